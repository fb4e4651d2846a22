package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProblemOrdersQueryHandler lists the orders parked in Problem or Waiting.
// Feeds the periodic Auto-Resolver sweep.
type GetProblemOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetProblemOrdersQueryHandler creates a handler for parked order queries.
// Requires a GORM database connection for query execution.
func NewGetProblemOrdersQueryHandler(db *gorm.DB) GetProblemOrdersQueryHandler {
	return GetProblemOrdersQueryHandler{db: db}
}

// Handle executes the query for orders awaiting resolution.
// Results are sorted by order ID so successive sweeps visit orders in a
// stable sequence.
func (h GetProblemOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetProblemOrdersQuery,
) ([]GetProblemOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parked := make([]GetProblemOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status
		FROM orders
		WHERE status IN (?, ?)
		ORDER BY id
	`, order.Problem, order.Waiting).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id     uuid.UUID
			status int
		)

		if err = rows.Scan(&id, &status); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		parked = append(parked, GetProblemOrdersQueryResponse{
			ID:     orderID,
			Status: order.Status(status),
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parked, nil
}

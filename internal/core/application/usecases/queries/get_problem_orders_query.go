package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetProblemOrdersQueryIsNotConstructed = errors.New(
	"GetProblemOrdersQuery must be created via NewGetProblemOrdersQuery constructor",
)

// GetProblemOrdersQuery retrieves all orders parked in Problem or Waiting.
// The Auto-Resolver sweep uses it to find recovery candidates.
//
// Example:
//
//	query := NewGetProblemOrdersQuery()
//	handler := NewGetProblemOrdersQueryHandler(db)
//
//	parked, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list parked orders: %w", err)
//	}
//	fmt.Printf("%d orders awaiting resolution\n", len(parked))
type GetProblemOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetProblemOrdersQuery creates a query to retrieve parked orders.
// This is a parameterless query that fetches every order awaiting resolution.
func NewGetProblemOrdersQuery() GetProblemOrdersQuery {
	return GetProblemOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetProblemOrdersQueryIsNotConstructed if validation fails.
func (q GetProblemOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetProblemOrdersQueryIsNotConstructed)
}

// GetProblemOrdersQueryResponse identifies one order awaiting resolution.
type GetProblemOrdersQueryResponse struct {
	ID     kernel.UUID
	Status order.Status
}

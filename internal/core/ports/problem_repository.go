package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/problem"
)

// ProblemRepository defines the persistence contract for problem records.
type ProblemRepository interface {
	// Add persists a new problem record.
	Add(ctx context.Context, record *problem.Record) error

	// Update persists record changes, typically a status flip to resolved.
	Update(ctx context.Context, record *problem.Record) error

	// GetPendingByOrderID retrieves all pending problem records for an order.
	// An order without pending records yields an empty slice, not an error.
	GetPendingByOrderID(ctx context.Context, orderID kernel.UUID) ([]*problem.Record, error)
}

// Package ports defines repository interfaces for the fulfillment domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders and their items are created externally at checkout; this engine only
// reads them and persists transition outcomes.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	// Used by checkout-side code and test fixtures; the engine itself only updates.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists a transition outcome: the order row is written with a
	// conditional match on expectedStatus (the status read at transition
	// start), then every item row's availability and refund mark follow.
	// Returns a PreconditionFailedError when a concurrent transition already
	// moved the order away from expectedStatus, and an ObjectNotFoundError
	// when the order does not exist. Callers run Update inside a unit of
	// work so the conditional write serializes racing transitions.
	Update(ctx context.Context, aggregate *order.Order, expectedStatus order.Status) error

	// Get retrieves an order aggregate with all its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

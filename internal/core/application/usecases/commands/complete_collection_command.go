package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrCompleteCollectionCommandIsNotConstructed = errors.New(
	"CompleteCollectionCommand must be created via NewCompleteCollectionCommand constructor",
)

// CompleteCollectionCommand represents a collector finishing the physical
// collection of an order. Every item not explicitly settled before this point
// is confirmed available and the order leaves the fulfillment pipeline.
//
// Example:
//
//	cmd, err := NewCompleteCollectionCommand(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid completion request: %w", err)
//	}
//
//	handler := NewCompleteCollectionCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to complete collection: %w", err)
//	}
type CompleteCollectionCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteCollectionCommand creates a command to complete an order's collection.
// Validates that the order ID is a proper UUID.
func NewCompleteCollectionCommand(orderID kernel.UUID) (CompleteCollectionCommand, error) {
	cmd := CompleteCollectionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return CompleteCollectionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCompleteCollectionCommandIsNotConstructed if validation fails.
func (c CompleteCollectionCommand) Validate() error {
	return c.guard.Validate(ErrCompleteCollectionCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being completed.
func (c CompleteCollectionCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *CompleteCollectionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

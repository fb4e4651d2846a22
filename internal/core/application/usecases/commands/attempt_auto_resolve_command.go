package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAttemptAutoResolveCommandIsNotConstructed = errors.New(
	"AttemptAutoResolveCommand must be created via NewAttemptAutoResolveCommand constructor",
)

// AttemptAutoResolveCommand asks the Auto-Resolver to try recovering one
// escalated order: find a warehouse that can satisfy every missing item and
// silently return the order to collection. A failed attempt changes nothing.
//
// Example:
//
//	cmd, err := NewAttemptAutoResolveCommand(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid resolve request: %w", err)
//	}
//
//	handler := NewAttemptAutoResolveCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type AttemptAutoResolveCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAttemptAutoResolveCommand creates a command to attempt silent recovery of an order.
// Validates that the order ID is a proper UUID.
func NewAttemptAutoResolveCommand(orderID kernel.UUID) (AttemptAutoResolveCommand, error) {
	cmd := AttemptAutoResolveCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AttemptAutoResolveCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAttemptAutoResolveCommandIsNotConstructed if validation fails.
func (c AttemptAutoResolveCommand) Validate() error {
	return c.guard.Validate(ErrAttemptAutoResolveCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to recover.
func (c AttemptAutoResolveCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *AttemptAutoResolveCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

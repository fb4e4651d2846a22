package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrApplyOfficeDecisionCommandIsNotConstructed = errors.New(
	"ApplyOfficeDecisionCommand must be created via NewApplyOfficeDecisionCommand constructor",
)

// Decision is the office's verdict on an escalated order.
type Decision string

const (
	// DecisionCancel terminates the order and refunds every refundable item.
	DecisionCancel Decision = "Cancel"

	// DecisionApproveWithoutProduct refunds the missing items and sends the
	// order back to collection without them.
	DecisionApproveWithoutProduct Decision = "ApproveWithoutProduct"

	// DecisionWait parks the order until stock recovers or a later decision.
	DecisionWait Decision = "Wait"
)

// Validate checks that the decision is one of the three known verdicts.
func (d Decision) Validate() error {
	switch d {
	case DecisionCancel, DecisionApproveWithoutProduct, DecisionWait:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("decision",
			fmt.Errorf("%q is not a valid office decision", string(d)))
	}
}

// ApplyOfficeDecisionCommand represents the office ruling on an escalated
// order. The decision resolves the order's pending problem records except for
// Wait, which keeps them open for the Auto-Resolver.
//
// Example:
//
//	cmd, err := NewApplyOfficeDecisionCommand(orderID, DecisionCancel, "client approved cancellation")
//	if err != nil {
//	    return fmt.Errorf("invalid decision request: %w", err)
//	}
//
//	handler := NewApplyOfficeDecisionCommandHandler(uowFactory)
//	result, err := handler.Handle(ctx, cmd)
type ApplyOfficeDecisionCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	decision Decision
	comments string

	guard guard.ConstructorGuard
}

// NewApplyOfficeDecisionCommand creates a command carrying an office decision.
// Validates the order ID and that the decision names a known verdict.
// Comments are free-form and may be empty; they are stamped on the problem
// records the decision resolves.
func NewApplyOfficeDecisionCommand(
	orderID kernel.UUID, decision Decision, comments string,
) (ApplyOfficeDecisionCommand, error) {
	cmd := ApplyOfficeDecisionCommand{
		comments: comments,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDecision(decision),
	); err != nil {
		return ApplyOfficeDecisionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrApplyOfficeDecisionCommandIsNotConstructed if validation fails.
func (c ApplyOfficeDecisionCommand) Validate() error {
	return c.guard.Validate(ErrApplyOfficeDecisionCommandIsNotConstructed)
}

// OrderID returns the identifier of the escalated order.
func (c ApplyOfficeDecisionCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Decision returns the office verdict to apply.
func (c ApplyOfficeDecisionCommand) Decision() Decision {
	return c.decision
}

// Comments returns the office's free-form explanation of the decision.
func (c ApplyOfficeDecisionCommand) Comments() string {
	return c.comments
}

func (c *ApplyOfficeDecisionCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApplyOfficeDecisionCommand) setDecision(decision Decision) error {
	if err := decision.Validate(); err != nil {
		return err
	}

	c.decision = decision
	return nil
}

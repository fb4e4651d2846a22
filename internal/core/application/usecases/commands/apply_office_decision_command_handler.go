package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// OfficeDecisionResult reports what an applied decision changed.
type OfficeDecisionResult struct {
	// OldStatus is the order status read before the decision was applied.
	OldStatus order.Status

	// NewStatus is the order status after the decision.
	NewStatus order.Status

	// ItemsUpdated counts the line items whose refund state changed.
	ItemsUpdated int
}

// ApplyOfficeDecisionCommandHandler applies an office verdict to an escalated
// order. Cancel terminates the order and refunds everything refundable;
// ApproveWithoutProduct refunds the missing items and resumes collection
// without them; Wait parks the order.
//
// Cancel and ApproveWithoutProduct resolve the order's pending problem
// records. Wait leaves them pending so the Auto-Resolver keeps sweeping the
// order.
//
// Example:
//
//	handler := NewApplyOfficeDecisionCommandHandler(uowFactory)
//	cmd, _ := NewApplyOfficeDecisionCommand(orderID, DecisionWait, "supplier restock due Friday")
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // decision not applicable in the order's current status; nothing changed
//	}
type ApplyOfficeDecisionCommandHandler struct {
	uowFactory ResolutionUoWFactory
}

// NewApplyOfficeDecisionCommandHandler creates a handler for office decisions.
// Requires a ResolutionUoWFactory for coordinating order and problem record writes.
func NewApplyOfficeDecisionCommandHandler(uowFactory ResolutionUoWFactory) ApplyOfficeDecisionCommandHandler {
	return ApplyOfficeDecisionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the office decision.
// Loads the order, applies the transition matching the decision, resolves the
// pending problem records for terminal-for-the-problem decisions, and
// persists everything atomically. Returns the before/after statuses and the
// number of refund-state changes.
func (h ApplyOfficeDecisionCommandHandler) Handle(
	ctx context.Context, cmd ApplyOfficeDecisionCommand,
) (OfficeDecisionResult, error) {
	if err := cmd.Validate(); err != nil {
		return OfficeDecisionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OfficeDecisionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	problemRepo := uow.ProblemRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return OfficeDecisionResult{}, err
	}

	expectedStatus := aggregate.Status()

	var itemsUpdated int
	switch cmd.Decision() {
	case DecisionCancel:
		itemsUpdated, err = aggregate.Cancel()
	case DecisionApproveWithoutProduct:
		itemsUpdated, err = aggregate.ApproveWithoutMissing()
	case DecisionWait:
		err = aggregate.Wait()
	default:
		err = cmd.Decision().Validate()
	}
	if err != nil {
		return OfficeDecisionResult{}, err
	}

	if err = orderRepo.Update(ctx, aggregate, expectedStatus); err != nil {
		return OfficeDecisionResult{}, err
	}

	if cmd.Decision() != DecisionWait {
		if err = resolvePendingRecords(ctx, problemRepo, aggregate.ID(), cmd.Comments()); err != nil {
			return OfficeDecisionResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return OfficeDecisionResult{}, err
	}

	return OfficeDecisionResult{
		OldStatus:    expectedStatus,
		NewStatus:    aggregate.Status(),
		ItemsUpdated: itemsUpdated,
	}, nil
}

// resolvePendingRecords flips every pending problem record of the order to
// resolved inside the current transaction, stamping the resolution comment.
func resolvePendingRecords(
	ctx context.Context, repo ports.ProblemRepository, orderID kernel.UUID, comment string,
) error {
	records, err := repo.GetPendingByOrderID(ctx, orderID)
	if err != nil {
		return err
	}

	for _, record := range records {
		record.Resolve(comment)
		if err = repo.Update(ctx, record); err != nil {
			return err
		}
	}

	return nil
}

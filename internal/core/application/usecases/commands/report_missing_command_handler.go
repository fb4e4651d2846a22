package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/problem"
)

// EscalationResult reports what a missing-product report created.
type EscalationResult struct {
	// Status is the order status after escalation.
	Status order.Status

	// ProblemIDs identifies the problem records opened by the report,
	// one per missing product, in report order.
	ProblemIDs []kernel.UUID
}

// ReportMissingCommandHandler handles the escalation path of the fulfillment
// pipeline. It marks the reported products missing, moves the order to
// Problem, opens one pending problem record per missing product, and reserves
// stock for any products the collector pinned as available.
//
// Example:
//
//	handler := NewReportMissingCommandHandler(uowFactory)
//	cmd, _ := NewReportMissingCommand(orderID, collectorID, missing, nil, false, "")
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("escalation failed: %w", err)
//	}
//	log.Printf("opened %d problem records", len(result.ProblemIDs))
type ReportMissingCommandHandler struct {
	uowFactory EscalationUoWFactory
}

// NewReportMissingCommandHandler creates a handler for missing-product escalation.
// Requires an EscalationUoWFactory for coordinating order, problem record,
// and inventory writes.
func NewReportMissingCommandHandler(uowFactory EscalationUoWFactory) ReportMissingCommandHandler {
	return ReportMissingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the missing-product report.
// Applies the Collecting to Problem transition, decrements stock for every
// pinned item the transition confirmed, and persists the order together with
// one pending problem record per missing product. Returns the new status and
// the ids of the records it opened.
func (h ReportMissingCommandHandler) Handle(
	ctx context.Context, cmd ReportMissingCommand,
) (EscalationResult, error) {
	if err := cmd.Validate(); err != nil {
		return EscalationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return EscalationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	problemRepo := uow.ProblemRepository()
	inventoryRepo := uow.InventoryRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return EscalationResult{}, err
	}

	expectedStatus := aggregate.Status()

	pinned, err := aggregate.ReportMissing(cmd.Missing(), cmd.PinnedAvailable())
	if err != nil {
		return EscalationResult{}, err
	}

	for _, item := range pinned {
		if err = inventoryRepo.Decrement(
			ctx, aggregate.Warehouse(), item.ProductID(), item.Quantity(),
		); err != nil {
			return EscalationResult{}, err
		}
	}

	if err = orderRepo.Update(ctx, aggregate, expectedStatus); err != nil {
		return EscalationResult{}, err
	}

	problemIDs := make([]kernel.UUID, 0, len(cmd.Missing()))
	for _, productID := range cmd.Missing() {
		record, recordErr := problem.NewRecord(
			aggregate.ID(), productID, aggregate.ClientID(), cmd.CollectorID(), cmd.Details(),
		)
		if recordErr != nil {
			return EscalationResult{}, recordErr
		}
		if err = problemRepo.Add(ctx, record); err != nil {
			return EscalationResult{}, err
		}
		problemIDs = append(problemIDs, record.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return EscalationResult{}, err
	}

	return EscalationResult{
		Status:     aggregate.Status(),
		ProblemIDs: problemIDs,
	}, nil
}

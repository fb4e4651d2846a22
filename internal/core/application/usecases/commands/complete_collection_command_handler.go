package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// CollectionResult reports what completing the collection changed.
type CollectionResult struct {
	// Status is the order status after completion.
	Status order.Status

	// ItemsSettled counts the items confirmed available by the completion.
	ItemsSettled int
}

// CompleteCollectionCommandHandler handles the happy-path exit of the
// fulfillment pipeline. It confirms the order's remaining unknown items as
// available, decrements the serving warehouse's stock for them, and moves the
// order to its terminal Completed status.
//
// The order write is conditional on the status read at the start of the
// transaction, so a racing escalation or cancellation surfaces as a
// PreconditionFailedError instead of silently losing a transition.
//
// Example:
//
//	handler := NewCompleteCollectionCommandHandler(uowFactory)
//	cmd, _ := NewCompleteCollectionCommand(orderID)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrInvalidTransition):
//	    // the order is not in Collecting; nothing was changed
//	case errors.Is(err, order.ErrUnresolvedMissingItems):
//	    // a missing item must be escalated or refunded first
//	case err != nil:
//	    return err
//	}
//	log.Printf("completed with %d items settled", result.ItemsSettled)
type CompleteCollectionCommandHandler struct {
	uowFactory CollectionUoWFactory
}

// NewCompleteCollectionCommandHandler creates a handler for collection completion.
// Requires a CollectionUoWFactory for coordinating order and inventory writes.
func NewCompleteCollectionCommandHandler(uowFactory CollectionUoWFactory) CompleteCollectionCommandHandler {
	return CompleteCollectionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the collection completion command.
// Loads the order, applies the Collecting to Completed transition, decrements
// the serving warehouse's stock for every item settled by the transition, and
// persists the outcome atomically. Returns the final status and the number of
// items the completion settled.
func (h CompleteCollectionCommandHandler) Handle(
	ctx context.Context, cmd CompleteCollectionCommand,
) (CollectionResult, error) {
	if err := cmd.Validate(); err != nil {
		return CollectionResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CollectionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	inventoryRepo := uow.InventoryRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return CollectionResult{}, err
	}

	expectedStatus := aggregate.Status()

	settled, err := aggregate.CompleteCollection()
	if err != nil {
		return CollectionResult{}, err
	}

	for _, item := range settled {
		if err = inventoryRepo.Decrement(
			ctx, aggregate.Warehouse(), item.ProductID(), item.Quantity(),
		); err != nil {
			return CollectionResult{}, err
		}
	}

	if err = orderRepo.Update(ctx, aggregate, expectedStatus); err != nil {
		return CollectionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CollectionResult{}, err
	}

	return CollectionResult{
		Status:       aggregate.Status(),
		ItemsSettled: len(settled),
	}, nil
}

package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// AutoResolveResult reports the outcome of one recovery attempt.
type AutoResolveResult struct {
	// Resolved reports whether the order was returned to collection.
	Resolved bool

	// Warehouse is the inventory partition now serving the order.
	// Only meaningful when Resolved is true.
	Warehouse warehouse.ID

	// UnresolvedItems counts the missing items no candidate warehouse could
	// satisfy. Zero when Resolved is true.
	UnresolvedItems int
}

// AttemptAutoResolveCommandHandler drives silent recovery of escalated orders.
// It probes the candidate warehouses derived from the client's locality for
// one holding every missing item, reserves that stock, flips the items to
// available, resolves the pending problem records, and returns the order to
// Collecting with the satisfying warehouse as its serving partition.
//
// Probing and reserving are separate reads and writes, so stock observed
// during the probe can be taken by a concurrent order before the decrement
// lands. The decrement is conditional; when it fails the handler rolls the
// attempt back, excludes that warehouse, and re-probes from a fresh read.
//
// Example:
//
//	handler := NewAttemptAutoResolveCommandHandler(uowFactory)
//	cmd, _ := NewAttemptAutoResolveCommand(orderID)
//	result, err := handler.Handle(ctx, cmd)
//	if err == nil && !result.Resolved {
//	    // no warehouse can satisfy the order yet; try again on the next sweep
//	}
type AttemptAutoResolveCommandHandler struct {
	uowFactory ResolutionUoWFactory
	selector   services.WarehouseSelector
	prober     services.AvailabilityProber
}

// NewAttemptAutoResolveCommandHandler creates a handler for silent recovery attempts.
// Requires a ResolutionUoWFactory for coordinating order, problem record, and
// inventory writes.
func NewAttemptAutoResolveCommandHandler(uowFactory ResolutionUoWFactory) AttemptAutoResolveCommandHandler {
	return AttemptAutoResolveCommandHandler{
		uowFactory: uowFactory,
		selector:   services.NewWarehouseSelector(),
		prober:     services.NewAvailabilityProber(),
	}
}

// Handle processes one recovery attempt for the order.
// Each attempt runs in its own transaction over a fresh read of the order and
// its stock. A warehouse whose stock vanished between probe and decrement is
// excluded and the attempt restarts; the loop ends when a warehouse sticks or
// every candidate is exhausted.
func (h AttemptAutoResolveCommandHandler) Handle(
	ctx context.Context, cmd AttemptAutoResolveCommand,
) (AutoResolveResult, error) {
	if err := cmd.Validate(); err != nil {
		return AutoResolveResult{}, err
	}

	excluded := make(map[warehouse.ID]bool)
	for {
		result, contested, err := h.attempt(ctx, cmd, excluded)
		if err != nil {
			return AutoResolveResult{}, err
		}
		if contested != "" {
			excluded[contested] = true
			continue
		}
		return result, nil
	}
}

// attempt runs one transactional recovery pass. A non-empty contested
// warehouse means its stock was taken between probe and decrement and the
// caller should retry without it.
func (h AttemptAutoResolveCommandHandler) attempt(
	ctx context.Context, cmd AttemptAutoResolveCommand, excluded map[warehouse.ID]bool,
) (result AutoResolveResult, contested warehouse.ID, err error) {
	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return AutoResolveResult{}, "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	problemRepo := uow.ProblemRepository()
	inventoryRepo := uow.InventoryRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return AutoResolveResult{}, "", err
	}

	expectedStatus := aggregate.Status()
	requirements := aggregate.MissingRequirements()

	// Every missing item was refunded in the meantime; the order recovers
	// without touching any stock and keeps its serving warehouse.
	if len(requirements) == 0 {
		if _, err = aggregate.Recover(""); err != nil {
			return AutoResolveResult{}, "", err
		}
		if err = persistRecovery(ctx, uow, orderRepo, problemRepo, aggregate, expectedStatus); err != nil {
			return AutoResolveResult{}, "", err
		}
		return AutoResolveResult{Resolved: true, Warehouse: aggregate.Warehouse()}, "", nil
	}

	candidates := make([]warehouse.ID, 0, len(warehouse.Private())+1)
	for _, candidate := range h.selector.Candidates(aggregate.Locality()) {
		if !excluded[candidate] {
			candidates = append(candidates, candidate)
		}
	}

	satisfying, found, err := h.prober.FirstFit(ctx, inventoryRepo, candidates, requirements)
	if err != nil {
		return AutoResolveResult{}, "", err
	}
	if !found {
		return AutoResolveResult{UnresolvedItems: len(requirements)}, "", nil
	}

	for _, req := range requirements {
		err = inventoryRepo.Decrement(ctx, satisfying, req.ProductID, req.Quantity)
		if errors.Is(err, errs.ErrInsufficientStock) {
			return AutoResolveResult{}, satisfying, nil
		}
		if err != nil {
			return AutoResolveResult{}, "", err
		}
	}

	if _, err = aggregate.Recover(satisfying); err != nil {
		return AutoResolveResult{}, "", err
	}
	if err = persistRecovery(ctx, uow, orderRepo, problemRepo, aggregate, expectedStatus); err != nil {
		return AutoResolveResult{}, "", err
	}

	return AutoResolveResult{Resolved: true, Warehouse: satisfying}, "", nil
}

// persistRecovery writes the recovered order, resolves its pending problem
// records, and commits.
func persistRecovery(
	ctx context.Context,
	uow TxManager,
	orderRepo ports.OrderRepository,
	problemRepo ports.ProblemRepository,
	aggregate *order.Order,
	expectedStatus order.Status,
) error {
	if err := orderRepo.Update(ctx, aggregate, expectedStatus); err != nil {
		return err
	}

	// Silent recovery carries no office comment.
	if err := resolvePendingRecords(ctx, problemRepo, aggregate.ID(), ""); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

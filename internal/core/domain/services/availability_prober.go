package services

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/warehouse"
)

// InventoryReader provides the stock reads the prober needs. The full
// repository contract satisfies it; tests supply a fake.
type InventoryReader interface {
	// Quantity returns the available quantity of a product in a warehouse,
	// zero if the row is absent.
	Quantity(ctx context.Context, warehouseID warehouse.ID, productID kernel.UUID) (int, error)
}

// AvailabilityProber finds the first warehouse in an ordered candidate list
// that satisfies every required (product, quantity) pair simultaneously.
//
// The search is first-fit: the probe stops at the first passing warehouse and
// never keeps looking for a "better" one. A warehouse failing any single
// requirement is skipped as a whole; partial fulfillment across warehouses is
// not attempted.
type AvailabilityProber struct{}

// NewAvailabilityProber creates a new AvailabilityProber instance.
func NewAvailabilityProber() AvailabilityProber {
	return AvailabilityProber{}
}

// FirstFit probes the candidates in order and returns the first warehouse
// whose read quantities satisfy every requirement, with found=false when none
// passes. Read errors abort the probe; the caller surfaces them.
//
// An empty requirement set reports not-found: the caller treats it as an
// immediately-successful resolution with no warehouse assignment, so the
// prober never fabricates a choice for it.
func (AvailabilityProber) FirstFit(
	ctx context.Context,
	inventory InventoryReader,
	candidates []warehouse.ID,
	requirements []order.Requirement,
) (warehouse.ID, bool, error) {
	if len(requirements) == 0 {
		return "", false, nil
	}

	for _, candidate := range candidates {
		passes, err := probe(ctx, inventory, candidate, requirements)
		if err != nil {
			return "", false, err
		}
		if passes {
			return candidate, true, nil
		}
	}

	return "", false, nil
}

// probe reports whether one warehouse satisfies all requirements at read time.
func probe(
	ctx context.Context,
	inventory InventoryReader,
	warehouseID warehouse.ID,
	requirements []order.Requirement,
) (bool, error) {
	for _, req := range requirements {
		available, err := inventory.Quantity(ctx, warehouseID, req.ProductID)
		if err != nil {
			return false, err
		}
		if available < req.Quantity {
			return false, nil
		}
	}
	return true, nil
}

package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"
)

// WarehouseSelector is a pure domain service mapping a client locality to the
// ordered, deduplicated list of candidate warehouses for that order.
//
// Selection rule:
//   - A locality naming a private warehouse puts that warehouse first,
//     followed by the remaining private warehouses in their fixed order,
//     then the general inventory last.
//   - Any other locality (including none) puts the general inventory first,
//     followed by all private warehouses in their fixed order.
//
// The ordering favors local-latency fulfillment while still allowing any
// warehouse to satisfy the order. It is deterministic on purpose: identical
// input always yields the identical list, and no cost or distance model is
// consulted.
type WarehouseSelector struct{}

// NewWarehouseSelector creates a new WarehouseSelector instance.
func NewWarehouseSelector() WarehouseSelector {
	return WarehouseSelector{}
}

// Candidates returns the ordered candidate warehouse list for the locality.
func (WarehouseSelector) Candidates(locality kernel.Locality) []warehouse.ID {
	private := warehouse.Private()
	candidates := make([]warehouse.ID, 0, len(private)+1)

	local, ok := warehouse.ByLocality(locality)
	if ok {
		candidates = append(candidates, local)
		for _, w := range private {
			if !w.IsEqual(local) {
				candidates = append(candidates, w)
			}
		}
		return append(candidates, warehouse.General)
	}

	candidates = append(candidates, warehouse.General)
	return append(candidates, private...)
}

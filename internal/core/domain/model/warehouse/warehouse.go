// Package warehouse defines the named inventory partitions an order can be
// collected from: the shared general inventory and a small fixed set of
// private, locality-scoped warehouses. Candidates are computed at selection
// time and never persisted as entities; only their identifiers travel.
package warehouse

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ID names a single inventory partition.
type ID string

// General is the shared inventory every order can fall back to.
const General ID = "general"

// Private warehouses in their fixed selection order. The order is part of the
// contract: the Warehouse Selector emits candidates deterministically.
var privateWarehouses = []ID{
	"amsterdam",
	"rotterdam",
	"utrecht",
}

// ErrWarehouseIsNotConstructed is returned when validating an empty warehouse ID.
var ErrWarehouseIsNotConstructed = errs.NewValueIsRequiredError("warehouse id must not be empty")

// Private returns the fixed, ordered list of private warehouse IDs.
// The returned slice is a copy; callers may reorder it freely.
func Private() []ID {
	out := make([]ID, len(privateWarehouses))
	copy(out, privateWarehouses)
	return out
}

// ByLocality maps a normalized locality to its private warehouse, if one exists.
func ByLocality(locality kernel.Locality) (ID, bool) {
	for _, w := range privateWarehouses {
		if string(w) == locality.Value() {
			return w, true
		}
	}
	return "", false
}

// String returns the identifier's raw name.
func (id ID) String() string {
	return string(id)
}

// IsEqual compares two warehouse identifiers.
func (id ID) IsEqual(other ID) bool {
	return id == other
}

// Validate rejects the empty identifier.
func (id ID) Validate() error {
	if id == "" {
		return ErrWarehouseIsNotConstructed
	}
	return nil
}

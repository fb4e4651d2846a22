package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Availability is the per-item collection state discovered during fulfillment.
type Availability int

const (
	// AvailabilityUnknown is the initial state: the item has not been checked yet.
	AvailabilityUnknown Availability = iota

	// AvailabilityAvailable means the item is confirmed present (collected,
	// pinned by a collector, or recovered from another warehouse).
	AvailabilityAvailable

	// AvailabilityMissing means the collector could not find the item.
	AvailabilityMissing

	// AvailabilityRefunded means the item's value was refunded; it is no longer
	// part of the order's chargeable total.
	AvailabilityRefunded
)

func getAvailabilityStrings() map[Availability]string {
	return map[Availability]string{
		AvailabilityUnknown:   "Unknown",
		AvailabilityAvailable: "Available",
		AvailabilityMissing:   "Missing",
		AvailabilityRefunded:  "Refunded",
	}
}

// Validate checks if the Availability value is within the closed enumeration.
func (a Availability) Validate() error {
	if _, ok := getAvailabilityStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"availability is invalid", fmt.Errorf("%d is not a valid availability", a))
	}
	return nil
}

// String returns the human-readable name of the availability state.
func (a Availability) String() string {
	if str, ok := getAvailabilityStrings()[a]; ok {
		return str
	}
	return "Unknown"
}

// RefundMark tracks an item's refund lifecycle independently of its availability.
type RefundMark int

const (
	// RefundMarkNone means the item has not been refunded.
	RefundMarkNone RefundMark = iota

	// RefundMarkRefunded means the item's value was refunded by a transition
	// in this engine (cancellation or approve-without-product).
	RefundMarkRefunded

	// RefundMarkRefundedFinal is terminal: the refund has been settled
	// externally and no transition in this engine may overwrite it.
	RefundMarkRefundedFinal
)

func getRefundMarkStrings() map[RefundMark]string {
	return map[RefundMark]string{
		RefundMarkNone:          "None",
		RefundMarkRefunded:      "Refunded",
		RefundMarkRefundedFinal: "RefundedFinal",
	}
}

// Validate checks if the RefundMark value is within the closed enumeration.
func (m RefundMark) Validate() error {
	if _, ok := getRefundMarkStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"refund mark is invalid", fmt.Errorf("%d is not a valid refund mark", m))
	}
	return nil
}

// String returns the human-readable name of the refund mark.
func (m RefundMark) String() string {
	if str, ok := getRefundMarkStrings()[m]; ok {
		return str
	}
	return "None"
}

// IsFinal reports whether the mark forbids any further mutation of its item.
func (m RefundMark) IsFinal() bool {
	return m == RefundMarkRefundedFinal
}

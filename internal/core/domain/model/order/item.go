package order

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	// ErrOrderItemIsNotConstructed is returned when an OrderItem was not created
	// through NewOrderItem or RestoreOrderItem.
	ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem or RestoreOrderItem")

	// ErrRefundMarkIsFinal is returned when a transition would overwrite the
	// state of an item whose refund mark is RefundedFinal.
	ErrRefundMarkIsFinal = errors.New("item refund mark is final and cannot be overwritten")
)

// OrderItem is one product/quantity line within an order. Its availability and
// refund mark are mutated exclusively by the Order aggregate's transitions;
// the mutators are unexported on purpose.
type OrderItem struct {
	id           kernel.UUID
	productID    kernel.UUID
	quantity     int
	unitPrice    int64
	availability Availability
	refundMark   RefundMark
	guard        guard.ConstructorGuard
}

// NewOrderItem creates a line item in its initial state (availability Unknown,
// no refund mark). Quantity must be positive; unitPrice is in minor currency
// units and must not be negative.
func NewOrderItem(id, productID kernel.UUID, quantity int, unitPrice int64) (*OrderItem, error) {
	return RestoreOrderItem(id, productID, quantity, unitPrice, AvailabilityUnknown, RefundMarkNone)
}

// RestoreOrderItem reconstructs a line item from persistence, validating every field.
func RestoreOrderItem(
	id, productID kernel.UUID,
	quantity int,
	unitPrice int64,
	availability Availability,
	refundMark RefundMark,
) (*OrderItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("unit price is invalid",
			fmt.Errorf("%d is negative", unitPrice))
	}
	if err := availability.Validate(); err != nil {
		return nil, err
	}
	if err := refundMark.Validate(); err != nil {
		return nil, err
	}

	return &OrderItem{
		id:           id,
		productID:    productID,
		quantity:     quantity,
		unitPrice:    unitPrice,
		availability: availability,
		refundMark:   refundMark,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through a constructor.
func (i *OrderItem) Validate() error {
	if i == nil {
		return ErrOrderItemIsNotConstructed
	}
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ID returns the line item's unique identifier.
func (i *OrderItem) ID() kernel.UUID {
	return i.id
}

// ProductID returns the identifier of the product this line refers to.
func (i *OrderItem) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the required quantity (always positive).
func (i *OrderItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit in minor currency units.
func (i *OrderItem) UnitPrice() int64 {
	return i.unitPrice
}

// Availability returns the item's current collection state.
func (i *OrderItem) Availability() Availability {
	return i.availability
}

// RefundMark returns the item's refund lifecycle state.
func (i *OrderItem) RefundMark() RefundMark {
	return i.refundMark
}

// Subtotal returns quantity times unit price.
func (i *OrderItem) Subtotal() int64 {
	return int64(i.quantity) * i.unitPrice
}

// IsRefunded reports whether the item's value no longer counts toward the
// order's chargeable total.
func (i *OrderItem) IsRefunded() bool {
	return i.refundMark != RefundMarkNone
}

// markAvailable flips an Unknown or Missing item to Available.
// Refunded items and items with a final refund mark are never flipped.
func (i *OrderItem) markAvailable() error {
	if i.refundMark.IsFinal() {
		return ErrRefundMarkIsFinal
	}
	if i.availability == AvailabilityRefunded {
		return errs.NewValueIsInvalidErrorWithCause("availability is invalid",
			fmt.Errorf("%s cannot become available", i.availability))
	}
	i.availability = AvailabilityAvailable
	return nil
}

// markMissing flips an item to Missing. Only items that have not been
// confirmed or refunded can go missing.
func (i *OrderItem) markMissing() error {
	if i.refundMark.IsFinal() {
		return ErrRefundMarkIsFinal
	}
	if i.availability != AvailabilityUnknown && i.availability != AvailabilityMissing {
		return errs.NewValueIsInvalidErrorWithCause("availability is invalid",
			fmt.Errorf("%s cannot become missing", i.availability))
	}
	i.availability = AvailabilityMissing
	return nil
}

// refund marks the item's value as refunded. Items whose mark is already
// RefundedFinal are left untouched. Returns true when the item changed.
func (i *OrderItem) refund() bool {
	if i.refundMark.IsFinal() {
		return false
	}
	changed := i.refundMark != RefundMarkRefunded || i.availability != AvailabilityRefunded
	i.refundMark = RefundMarkRefunded
	i.availability = AvailabilityRefunded
	return changed
}

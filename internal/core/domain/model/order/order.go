package order

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoItems is returned when constructing an order without line items.
	ErrOrderHasNoItems = errors.New("order must have at least one item")

	// ErrUnresolvedMissingItems is returned when completing collection while an
	// item is still Missing without a refund. Such an order must go through
	// escalation first.
	ErrUnresolvedMissingItems = errors.New("order has unresolved missing items")

	// ErrNoMissingItemsReported is returned when a missing-item report names no products.
	ErrNoMissingItemsReported = errors.New("missing report must name at least one product")
)

// Requirement is one (product, quantity) pair the Auto-Resolver must satisfy.
type Requirement struct {
	ProductID kernel.UUID
	Quantity  int
}

// Order is the aggregate root for fulfillment. It owns the authoritative
// status of the order and of each line item, and every transition between
// collection, escalation, and resolution runs through its methods.
//
// Order follows these invariants:
//   - Status transitions follow the state machine defined on Status
//   - Terminal statuses (Cancelled, Completed) are never left
//   - An item with refund mark RefundedFinal is never mutated
//   - Item availability changes only inside a status transition computation
//
// The struct uses private fields to ensure encapsulation; it can only be
// created through NewOrder or RestoreOrder.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// clientID identifies the customer the order belongs to
	clientID kernel.UUID

	// locality is the client's normalized locality, captured at checkout;
	// it seeds warehouse candidate selection during silent recovery
	locality kernel.Locality

	// status is the current state in the fulfillment lifecycle
	status Status

	// warehouseID is the inventory partition currently serving the order;
	// the general inventory by default, replaced on silent recovery
	warehouseID warehouse.ID

	// items are the order's line items, keyed logically by product
	items []*OrderItem

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an order entering fulfillment: status Collecting, served by
// the general inventory, every item in its initial Unknown state.
// Orders and their items are created together at checkout; thereafter the
// aggregate is mutated only through its transition methods.
func NewOrder(id, clientID kernel.UUID, locality kernel.Locality, items []*OrderItem) (*Order, error) {
	now := time.Now().UTC()
	return RestoreOrder(id, clientID, locality, Collecting, warehouse.General, items, now, now)
}

// RestoreOrder reconstructs an order from persistence, validating all parts.
func RestoreOrder(
	id, clientID kernel.UUID,
	locality kernel.Locality,
	status Status,
	warehouseID warehouse.ID,
	items []*OrderItem,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		clientID.Validate(),
		locality.Validate(),
		status.Validate(),
		warehouseID.Validate(),
	); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		clientID:      clientID,
		locality:      locality,
		status:        status,
		warehouseID:   warehouseID,
		items:         items,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Called when reconstructing orders from persistence to ensure data integrity.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the identifier of the customer the order belongs to.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Locality returns the client's normalized locality.
func (o *Order) Locality() kernel.Locality {
	return o.locality
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Warehouse returns the inventory partition currently serving the order.
func (o *Order) Warehouse() warehouse.ID {
	return o.warehouseID
}

// Items returns the order's line items.
func (o *Order) Items() []*OrderItem {
	return o.items
}

// CreatedAt returns the order's creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the time of the last transition applied to the order.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Item returns the line item for the given product.
func (o *Order) Item(productID kernel.UUID) (*OrderItem, error) {
	for _, item := range o.items {
		if item.ProductID().IsEqual(productID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("product", productID.String())
}

// CompleteCollection applies Collecting -> Completed: every remaining Unknown
// item is confirmed Available and returned so the caller can decrement the
// serving warehouse's inventory in the same transaction.
//
// An item still Missing without a refund blocks completion; such an order must
// go through escalation first.
func (o *Order) CompleteCollection() ([]*OrderItem, error) {
	newStatus, err := o.status.Complete()
	if err != nil {
		return nil, err
	}

	for _, item := range o.items {
		if item.Availability() == AvailabilityMissing && !item.IsRefunded() {
			return nil, ErrUnresolvedMissingItems
		}
	}

	settled := make([]*OrderItem, 0, len(o.items))
	for _, item := range o.items {
		if item.Availability() != AvailabilityUnknown {
			continue
		}
		if markErr := item.markAvailable(); markErr != nil {
			return nil, markErr
		}
		settled = append(settled, item)
	}

	o.status = newStatus
	o.touch()
	return settled, nil
}

// ReportMissing applies Collecting -> Problem: the named products are marked
// Missing; pinnedAvailable products still Unknown are confirmed Available in
// the same step and returned for inventory decrement. Pass no pinned products
// when the reporting collector lacks the pin-availability capability.
func (o *Order) ReportMissing(missing, pinnedAvailable []kernel.UUID) ([]*OrderItem, error) {
	newStatus, err := o.status.StartProblem()
	if err != nil {
		return nil, err
	}
	if len(missing) == 0 {
		return nil, ErrNoMissingItemsReported
	}

	for _, productID := range missing {
		item, itemErr := o.Item(productID)
		if itemErr != nil {
			return nil, itemErr
		}
		if markErr := item.markMissing(); markErr != nil {
			return nil, markErr
		}
	}

	pinned := make([]*OrderItem, 0, len(pinnedAvailable))
	for _, productID := range pinnedAvailable {
		item, itemErr := o.Item(productID)
		if itemErr != nil {
			return nil, itemErr
		}
		if item.Availability() != AvailabilityUnknown {
			continue
		}
		if markErr := item.markAvailable(); markErr != nil {
			return nil, markErr
		}
		pinned = append(pinned, item)
	}

	o.status = newStatus
	o.touch()
	return pinned, nil
}

// Recover applies Problem -> Collecting after the Auto-Resolver found a
// warehouse satisfying every missing item. The recovered items are marked
// Available and returned for inventory decrement; the satisfying warehouse
// replaces the order's serving warehouse. An empty warehouse ID keeps the
// current one (used when no item was left to recover).
func (o *Order) Recover(warehouseID warehouse.ID) ([]*OrderItem, error) {
	newStatus, err := o.status.Recover()
	if err != nil {
		return nil, err
	}

	recovered := make([]*OrderItem, 0, len(o.items))
	for _, item := range o.items {
		if item.Availability() != AvailabilityMissing || item.IsRefunded() {
			continue
		}
		if markErr := item.markAvailable(); markErr != nil {
			return nil, markErr
		}
		recovered = append(recovered, item)
	}

	if warehouseID != "" {
		o.warehouseID = warehouseID
	}
	o.status = newStatus
	o.touch()
	return recovered, nil
}

// Cancel applies the Cancel decision: every item without a final refund mark
// is refunded and the order becomes Cancelled. Returns the number of items mutated.
func (o *Order) Cancel() (int, error) {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, item := range o.items {
		if item.refund() {
			updated++
		}
	}

	o.status = newStatus
	o.touch()
	return updated, nil
}

// ApproveWithoutMissing applies the ApproveWithoutProduct decision: each
// Missing item without a final refund mark is refunded and the order proceeds
// without it, back in Collecting. Returns the number of items mutated.
func (o *Order) ApproveWithoutMissing() (int, error) {
	newStatus, err := o.status.Recover()
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, item := range o.items {
		if item.Availability() != AvailabilityMissing {
			continue
		}
		if item.refund() {
			updated++
		}
	}

	o.status = newStatus
	o.touch()
	return updated, nil
}

// Wait applies the Wait decision: the order is parked in Waiting, no item mutated.
func (o *Order) Wait() error {
	newStatus, err := o.status.Wait()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// MissingRequirements returns the (product, quantity) pairs the Auto-Resolver
// must satisfy: items currently Missing whose value has not been refunded.
func (o *Order) MissingRequirements() []Requirement {
	reqs := make([]Requirement, 0, len(o.items))
	for _, item := range o.items {
		if item.Availability() != AvailabilityMissing || item.IsRefunded() {
			continue
		}
		reqs = append(reqs, Requirement{ProductID: item.ProductID(), Quantity: item.Quantity()})
	}
	return reqs
}

// ChargeableTotal returns the sum of non-refunded item subtotals.
func (o *Order) ChargeableTotal() int64 {
	var total int64
	for _, item := range o.items {
		if item.IsRefunded() {
			continue
		}
		total += item.Subtotal()
	}
	return total
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

// Package problem provides the ProblemRecord entity: the audit row created
// when an item cannot be fulfilled as collected. Records are created once per
// missing item on escalation and are immutable except for their status.
package problem

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrRecordIsNotConstructed is returned when a Record was not created through
// NewRecord or RestoreRecord.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")

// Kind classifies what went wrong with the item.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown Kind = iota

	// KindMissingProduct is the only kind this engine creates: a collector
	// could not find the product during physical collection.
	KindMissingProduct
)

// Validate checks if the Kind value is valid.
func (k Kind) Validate() error {
	if k != KindMissingProduct {
		return errs.NewValueIsInvalidErrorWithCause("problem kind is invalid",
			fmt.Errorf("%d is not a valid problem kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
func (k Kind) String() string {
	if k == KindMissingProduct {
		return "MissingProduct"
	}
	return "Unknown"
}

// Status is the resolution state of a problem record.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusPending means the problem still awaits resolution.
	StatusPending

	// StatusResolved means an office decision or silent recovery settled it.
	StatusResolved
)

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if s != StatusPending && s != StatusResolved {
		return errs.NewValueIsInvalidErrorWithCause("problem status is invalid",
			fmt.Errorf("%d is not a valid problem status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusResolved:
		return "Resolved"
	default:
		return "Unknown"
	}
}

// Record is the escalation audit entry for one missing item.
// Core fields are immutable after creation; only the status moves, from
// Pending to Resolved, capturing the resolution comment as it does.
type Record struct {
	id          kernel.UUID
	orderID     kernel.UUID
	productID   kernel.UUID
	clientID    kernel.UUID
	collectorID kernel.UUID
	kind        Kind
	status      Status
	details     string
	resolution  string
	createdAt   time.Time
	guard       guard.ConstructorGuard
}

// NewRecord creates a pending missing-product record for the given order item.
func NewRecord(orderID, productID, clientID, collectorID kernel.UUID, details string) (*Record, error) {
	return RestoreRecord(
		kernel.NewUUID(), orderID, productID, clientID, collectorID,
		KindMissingProduct, StatusPending, details, "", time.Now().UTC(),
	)
}

// RestoreRecord reconstructs a record from persistence, validating every field.
func RestoreRecord(
	id, orderID, productID, clientID, collectorID kernel.UUID,
	kind Kind,
	status Status,
	details, resolution string,
	createdAt time.Time,
) (*Record, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		productID.Validate(),
		clientID.Validate(),
		collectorID.Validate(),
		kind.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Record{
		id:          id,
		orderID:     orderID,
		productID:   productID,
		clientID:    clientID,
		collectorID: collectorID,
		kind:        kind,
		status:      status,
		details:     details,
		resolution:  resolution,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the record was created through a constructor.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

// ID returns the record's unique identifier.
func (r *Record) ID() kernel.UUID {
	return r.id
}

// OrderID returns the escalated order's identifier.
func (r *Record) OrderID() kernel.UUID {
	return r.orderID
}

// ProductID returns the missing product's identifier.
func (r *Record) ProductID() kernel.UUID {
	return r.productID
}

// ClientID returns the customer the order belongs to.
func (r *Record) ClientID() kernel.UUID {
	return r.clientID
}

// CollectorID returns the collector who reported the item missing.
func (r *Record) CollectorID() kernel.UUID {
	return r.collectorID
}

// Kind returns what went wrong with the item.
func (r *Record) Kind() Kind {
	return r.kind
}

// Status returns the record's resolution state.
func (r *Record) Status() Status {
	return r.status
}

// Details returns the free-form description captured at escalation.
func (r *Record) Details() string {
	return r.details
}

// Resolution returns the comment captured when the record was resolved.
// Empty while pending and for silent recoveries.
func (r *Record) Resolution() string {
	return r.resolution
}

// CreatedAt returns the escalation time.
func (r *Record) CreatedAt() time.Time {
	return r.createdAt
}

// IsPending reports whether the record still awaits resolution.
func (r *Record) IsPending() bool {
	return r.status == StatusPending
}

// Resolve marks the record resolved and keeps the comment explaining why.
// Resolving twice keeps the first resolution comment.
func (r *Record) Resolve(comment string) {
	if r.status == StatusResolved {
		return
	}
	r.status = StatusResolved
	r.resolution = comment
}

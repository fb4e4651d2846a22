package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrReportMissingCommandIsNotConstructed = errors.New(
		"ReportMissingCommand must be created via NewReportMissingCommand constructor",
	)
	ErrMissingProductsRequired = errors.New("at least one missing product is required")
	ErrPinCapabilityRequired   = errors.New("collector is not allowed to pin availability")
)

// ReportMissingCommand represents a collector escalating an order: one or more
// products could not be found during physical collection. Collectors holding
// the pin capability may simultaneously confirm other products as available so
// their stock is reserved before the order parks in Problem.
//
// Example:
//
//	cmd, err := NewReportMissingCommand(
//	    orderID, collectorID,
//	    []kernel.UUID{missingProduct},
//	    []kernel.UUID{confirmedProduct},
//	    true, // collector may pin availability
//	    "shelf B4 empty",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid missing report: %w", err)
//	}
type ReportMissingCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	collectorID        kernel.UUID
	missing            []kernel.UUID
	pinnedAvailable    []kernel.UUID
	canPinAvailability bool
	details            string

	guard guard.ConstructorGuard
}

// NewReportMissingCommand creates a command to escalate an order over missing products.
// Requires at least one missing product; pinned products are rejected when the
// reporting collector lacks the pin capability.
func NewReportMissingCommand(
	orderID, collectorID kernel.UUID,
	missing, pinnedAvailable []kernel.UUID,
	canPinAvailability bool,
	details string,
) (ReportMissingCommand, error) {
	cmd := ReportMissingCommand{
		canPinAvailability: canPinAvailability,
		details:            details,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCollectorID(collectorID),
		cmd.setMissing(missing),
		cmd.setPinnedAvailable(pinnedAvailable),
	); err != nil {
		return ReportMissingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrReportMissingCommandIsNotConstructed if validation fails.
func (c ReportMissingCommand) Validate() error {
	return c.guard.Validate(ErrReportMissingCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being escalated.
func (c ReportMissingCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CollectorID returns the collector filing the report.
func (c ReportMissingCommand) CollectorID() kernel.UUID {
	return c.collectorID
}

// Missing returns the products reported as not found.
func (c ReportMissingCommand) Missing() []kernel.UUID {
	return c.missing
}

// PinnedAvailable returns the products the collector confirmed as available.
func (c ReportMissingCommand) PinnedAvailable() []kernel.UUID {
	return c.pinnedAvailable
}

// CanPinAvailability reports whether the collector holds the pin capability.
func (c ReportMissingCommand) CanPinAvailability() bool {
	return c.canPinAvailability
}

// Details returns the free-form description captured with the report.
func (c ReportMissingCommand) Details() string {
	return c.details
}

func (c *ReportMissingCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ReportMissingCommand) setCollectorID(collectorID kernel.UUID) error {
	if err := collectorID.Validate(); err != nil {
		return err
	}

	c.collectorID = collectorID
	return nil
}

func (c *ReportMissingCommand) setMissing(missing []kernel.UUID) error {
	if len(missing) == 0 {
		return ErrMissingProductsRequired
	}
	for _, productID := range missing {
		if err := productID.Validate(); err != nil {
			return err
		}
	}

	c.missing = missing
	return nil
}

func (c *ReportMissingCommand) setPinnedAvailable(pinned []kernel.UUID) error {
	if len(pinned) > 0 && !c.canPinAvailability {
		return ErrPinCapabilityRequired
	}
	for _, productID := range pinned {
		if err := productID.Validate(); err != nil {
			return err
		}
	}

	c.pinnedAvailable = pinned
	return nil
}

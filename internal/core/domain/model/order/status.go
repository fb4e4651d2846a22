package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so that orders follow
// the fulfillment workflow and always converge to a terminal state.
//
// State transitions:
//
//	Collecting ──┬──> Completed
//	             └──> Problem ──┬──> Collecting   (silent recovery / approve without product)
//	                            ├──> Waiting ──┬──> Collecting
//	                            │              └──> Cancelled
//	                            └──> Cancelled
//
// Cancelled and Completed are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Collecting is the working status: a collector is (or will be) gathering
	// the order's items at a warehouse. Orders are created in this status.
	Collecting

	// Problem indicates at least one item could not be collected and the order
	// is escalated, awaiting silent recovery or an office decision.
	Problem

	// Waiting parks an escalated order by office decision; no item is mutated.
	Waiting

	// Cancelled is a terminal status: the order was cancelled and its items refunded.
	Cancelled

	// Completed is a terminal status: every required item was collected.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Collecting: "Collecting",
		Problem:    "Problem",
		Waiting:    "Waiting",
		Cancelled:  "Cancelled",
		Completed:  "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Collecting: "Collecting",
		Problem:    "Problem",
		Waiting:    "Waiting",
		Cancelled:  "Cancelled",
		Completed:  "Completed",
	}
}

// Validate checks if the Status value is one of the closed set of valid statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == Cancelled || s == Completed
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Collecting -> Completed (all required items collected)
func (s Status) Complete() (Status, error) {
	if s != Collecting {
		return 0, errs.NewInvalidTransitionError("complete", s.String())
	}
	return Completed, nil
}

// StartProblem transitions the status to Problem.
//
// Valid transitions:
//   - Collecting -> Problem (a collector reported missing items)
func (s Status) StartProblem() (Status, error) {
	if s != Collecting {
		return 0, errs.NewInvalidTransitionError("escalate", s.String())
	}
	return Problem, nil
}

// Recover transitions the status back to Collecting.
//
// Valid transitions:
//   - Problem -> Collecting (silent recovery or approve-without-product)
//   - Waiting -> Collecting (office releases a parked order)
func (s Status) Recover() (Status, error) {
	if s != Problem && s != Waiting {
		return 0, errs.NewInvalidTransitionError("recover", s.String())
	}
	return Collecting, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Collecting -> Cancelled (administrative cancellation)
//   - Problem -> Cancelled (office decision)
//   - Waiting -> Cancelled (office decision on a parked order)
func (s Status) Cancel() (Status, error) {
	if s != Collecting && s != Problem && s != Waiting {
		return 0, errs.NewInvalidTransitionError("cancel", s.String())
	}
	return Cancelled, nil
}

// Wait transitions the status to Waiting.
//
// Valid transitions:
//   - Problem -> Waiting (office parks the order)
//   - Waiting -> Waiting (idempotent re-application of the decision)
func (s Status) Wait() (Status, error) {
	if s != Problem && s != Waiting {
		return 0, errs.NewInvalidTransitionError("wait", s.String())
	}
	return Waiting, nil
}

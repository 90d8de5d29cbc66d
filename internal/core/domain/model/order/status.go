package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──┬──> Confirmed
//	          └──> Denied
//
// Both Confirmed and Denied are terminal.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the status of every freshly created order, awaiting the seller's decision.
	Pending

	// Confirmed means the seller accepted the order and gave a delivery estimate.
	Confirmed

	// Denied means the seller declined the order.
	Denied
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Confirmed: "Confirmed",
		Denied:    "Denied",
	}
}

// Validate rejects Unknown and out-of-range values, e.g. corrupt rows read from storage.
func (s Status) Validate() error {
	if s < Pending || s > Denied {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Confirmed || s == Denied
}

// Confirm transitions Pending -> Confirmed.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidStateError("confirm", s.String())
	}
	return Confirmed, nil
}

// Deny transitions Pending -> Denied.
func (s Status) Deny() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewInvalidStateError("deny", s.String())
	}
	return Denied, nil
}

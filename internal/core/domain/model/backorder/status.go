package backorder

import (
	"fmt"

	"orderops/internal/pkg/errs"
)

// Status represents the fulfillment state of a backorder line. It is
// derived from the quantity ledger rather than stored, so cancellation
// moving quantities backward moves the status backward with them.
//
//	Pending ──> PartiallyShipped ──> FullyShipped
//	   ^               │                  │
//	   └───────────────┴──────────────────┘
//	          (cancellation moves backward)
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending means nothing has been shipped: remaining equals ordered.
	Pending

	// PartiallyShipped means some but not all quantity is outstanding.
	PartiallyShipped

	// FullyShipped means no quantity remains outstanding.
	FullyShipped
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		Pending:          "Pending",
		PartiallyShipped: "PartiallyShipped",
		FullyShipped:     "FullyShipped",
	}
}

// StatusFor derives the fulfillment status from a line's quantities.
func StatusFor(orderedQty, shippedQty, storeHeldQty int) Status {
	remaining := ComputeRemaining(orderedQty, shippedQty, storeHeldQty)
	switch {
	case remaining == orderedQty:
		return Pending
	case remaining == 0:
		return FullyShipped
	case remaining > 0 && remaining < orderedQty:
		return PartiallyShipped
	default:
		return Unknown
	}
}

// Validate reports whether the status is one of the derived states.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid fulfillment status", s))
	}
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid fulfillment status", s))
	}
	return nil
}

// String implements fmt.Stringer; it is safe on any Status value.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

package backorder

import (
	"fmt"

	"orderops/internal/pkg/errs"
)

// ErrInvalidQuantity indicates that a quantity ledger does not balance:
// a component is negative or shipped exceeds ordered.
var ErrInvalidQuantity = fmt.Errorf("%w: quantity ledger does not balance", errs.ErrValueIsInvalid)

// ComputeRemaining derives the outstanding quantity of a line.
// It is the single formula for remainingQty; callers must never store a
// remaining value that diverges from it.
func ComputeRemaining(orderedQty, shippedQty, storeHeldQty int) int {
	return orderedQty - shippedQty - storeHeldQty
}

// ValidateLedger checks the ledger invariant for one line's quantities:
// ordered, shipped, and store-held are non-negative, shipped does not
// exceed ordered, and the derived remaining quantity is non-negative.
func ValidateLedger(orderedQty, shippedQty, storeHeldQty int) error {
	if orderedQty < 0 || shippedQty < 0 || storeHeldQty < 0 {
		return fmt.Errorf("%w (ordered=%d shipped=%d storeHeld=%d)",
			ErrInvalidQuantity, orderedQty, shippedQty, storeHeldQty)
	}
	if shippedQty > orderedQty {
		return fmt.Errorf("%w (shipped=%d exceeds ordered=%d)",
			ErrInvalidQuantity, shippedQty, orderedQty)
	}
	if ComputeRemaining(orderedQty, shippedQty, storeHeldQty) < 0 {
		return fmt.Errorf("%w (remaining=%d is negative)",
			ErrInvalidQuantity, ComputeRemaining(orderedQty, shippedQty, storeHeldQty))
	}
	return nil
}

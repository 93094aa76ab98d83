package reconciliation

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/pkg/errs"
	"orderops/internal/pkg/guard"
)

// Domain errors for reconciliation line operations.
var (
	// ErrLineIsNotConstructed is returned when using a Line that was not
	// created via NewLine or RestoreLine.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine constructor")
	// ErrAlreadyLocked is returned for any edit or commit touching a line
	// that was already finalized.
	ErrAlreadyLocked = errors.New("line is locked: reconciliation already committed")
	// ErrInvalidInput is returned when an edited count is empty,
	// non-numeric, or negative. The stored input quantity is unchanged.
	ErrInvalidInput = errors.New("input quantity must be a non-negative number")
	// ErrExceedsAvailable is returned when an edited count exceeds
	// store inventory plus the externally confirmed quantity.
	ErrExceedsAvailable = errors.New("input quantity exceeds available stock")

	errSkuIDIsRequired = errs.NewValueIsRequiredError("skuId")
)

// Line is the aggregate root for one reconciliation line. It holds the
// externally confirmed return/expected quantity, the store inventory at
// batch opening, and the user-entered physical count.
//
// Invariants:
//   - 0 <= inputQty <= storeInventoryQty + confirmedQty
//   - Diff() == confirmedQty - inputQty, always derived
//   - once locked, no edit mutates the line
//
// The baseline is the input quantity at batch opening (or last save); it
// only feeds ChangedSinceBaseline, the affordance a presentation layer may
// use to auto-select edited rows.
type Line struct {
	id                kernel.UUID
	skuID             string
	storeInventoryQty int
	confirmedQty      int
	inputQty          int
	baseline          int
	locked            bool
	lockedAt          time.Time
	lockedBy          string
	version           int

	guard guard.ConstructorGuard
}

// NewLine creates an unlocked line for a freshly opened return/inbound
// batch. The input quantity starts at the confirmed quantity, which is
// also the baseline.
func NewLine(id kernel.UUID, skuID string, storeInventoryQty, confirmedQty int) (*Line, error) {
	line := &Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := line.setID(id); err != nil {
		return nil, err
	}
	if skuID == "" {
		return nil, errSkuIDIsRequired
	}
	line.skuID = skuID

	if storeInventoryQty < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("storeInventoryQty",
			errors.New("store inventory cannot be negative"))
	}
	if confirmedQty < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("confirmedQty",
			errors.New("confirmed quantity cannot be negative"))
	}
	line.storeInventoryQty = storeInventoryQty
	line.confirmedQty = confirmedQty
	line.inputQty = confirmedQty
	line.baseline = confirmedQty

	return line, nil
}

// RestoreLine reconstructs a line from persistence, including lock state
// and the optimistic-concurrency version.
func RestoreLine(
	id kernel.UUID,
	skuID string,
	storeInventoryQty, confirmedQty, inputQty, baseline int,
	locked bool,
	lockedAt time.Time,
	lockedBy string,
	version int,
) (*Line, error) {
	line, err := NewLine(id, skuID, storeInventoryQty, confirmedQty)
	if err != nil {
		return nil, err
	}

	if inputQty < 0 || inputQty > line.MaxInput() {
		return nil, errs.NewValueIsOutOfRangeError("inputQty", inputQty, 0, line.MaxInput())
	}
	line.inputQty = inputQty
	line.baseline = baseline
	line.locked = locked
	line.lockedAt = lockedAt
	line.lockedBy = lockedBy
	line.version = version

	return line, nil
}

// Validate ensures the line was created through a constructor.
func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// ID returns the line identifier.
func (l *Line) ID() kernel.UUID { return l.id }

// SkuID returns the product identifier of the stock movement.
func (l *Line) SkuID() string { return l.skuID }

// StoreInventoryQty returns the store inventory at batch opening.
func (l *Line) StoreInventoryQty() int { return l.storeInventoryQty }

// ConfirmedQty returns the externally confirmed return/expected quantity.
func (l *Line) ConfirmedQty() int { return l.confirmedQty }

// InputQty returns the user-entered physical count.
func (l *Line) InputQty() int { return l.inputQty }

// Baseline returns the input quantity at batch opening or last save.
func (l *Line) Baseline() int { return l.baseline }

// Locked reports whether the line was finalized by a commit.
func (l *Line) Locked() bool { return l.locked }

// LockedAt returns when the line was finalized; zero if unlocked.
func (l *Line) LockedAt() time.Time { return l.lockedAt }

// LockedBy returns the actor that committed the line, audit only.
func (l *Line) LockedBy() string { return l.lockedBy }

// Version returns the optimistic-concurrency version loaded from storage.
func (l *Line) Version() int { return l.version }

// MaxInput returns the upper bound for the physical count: the store
// inventory plus the confirmed quantity.
func (l *Line) MaxInput() int {
	return l.storeInventoryQty + l.confirmedQty
}

// Diff derives the discrepancy between the confirmed quantity and the
// physical count. Negative means more was counted than confirmed.
func (l *Line) Diff() int {
	return l.confirmedQty - l.inputQty
}

// ChangedSinceBaseline reports whether the current input diverges from the
// baseline. Presentation layers may use it as an auto-select affordance;
// the core attaches no behavior to it.
func (l *Line) ChangedSinceBaseline() bool {
	return l.inputQty != l.baseline
}

// EditInput applies a user-entered physical count given as raw text.
//
// A locked line fails with ErrAlreadyLocked. Empty, non-numeric, or
// negative input fails with ErrInvalidInput; a count above MaxInput fails
// with ErrExceedsAvailable. On any failure the stored input quantity is
// unchanged. On success the count is stored and Diff reflects it.
func (l *Line) EditInput(raw string) error {
	if l.locked {
		return ErrAlreadyLocked
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ErrInvalidInput
	}
	value, err := strconv.Atoi(trimmed)
	if err != nil || value < 0 {
		return ErrInvalidInput
	}
	if value > l.MaxInput() {
		return ErrExceedsAvailable
	}

	l.inputQty = value
	return nil
}

// Lock finalizes the line: the current input quantity becomes the
// authoritative stock movement and every further edit fails with
// ErrAlreadyLocked. Only commitReconciliation calls this.
func (l *Line) Lock(actor string) error {
	if l.locked {
		return ErrAlreadyLocked
	}

	l.locked = true
	l.lockedAt = time.Now()
	l.lockedBy = actor
	return nil
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

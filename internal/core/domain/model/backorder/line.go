package backorder

import (
	"errors"
	"time"

	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/pkg/errs"
	"orderops/internal/pkg/guard"
)

// primaryLineRank is the rank of the primary line within a seller group.
// Only the primary line may carry or edit the bundle flag.
const primaryLineRank = 1

// Domain errors for backorder line operations.
var (
	// ErrLineIsNotConstructed is returned when using a Line that was not
	// created via NewLine or RestoreLine.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine constructor")
	// ErrNothingToShip is returned when a shipment targets a line with no
	// outstanding quantity.
	ErrNothingToShip = errors.New("nothing to ship: no outstanding quantity")
	// ErrNothingToCancel is returned when cancelling a line that has no
	// shipped quantity.
	ErrNothingToCancel = errors.New("nothing to cancel: no shipped quantity")
	// ErrBundleConfirmationRequired is returned when cancelling a bundled
	// line without explicit confirmation. Unbundling changes how sibling
	// lines in the seller group are interpreted, so the caller must
	// re-invoke with confirm set.
	ErrBundleConfirmationRequired = errors.New("bundle confirmation required to cancel a bundled line")
	// ErrNotPrimaryLine is returned when editing the bundle flag on a line
	// that is not its seller group's primary line.
	ErrNotPrimaryLine = errors.New("bundle flag is editable only on the primary line of a seller group")

	errSellerIDIsRequired = errs.NewValueIsRequiredError("sellerId")
	errSkuIDIsRequired    = errs.NewValueIsRequiredError("skuId")
)

// Line is the aggregate root for one backorder line: an order line not yet
// fully delivered. It owns the quantity ledger of the line and is the only
// place shipment and cancellation mutate quantities.
//
// Invariants maintained by every operation:
//   - orderedQty == shippedQty + storeHeldQty + RemainingQty()
//   - all three stored quantities are non-negative
//   - shippedQty never exceeds orderedQty
//   - the bundle flag changes only through the primary line (rank 1)
//
// Operations are evaluated fully before any mutation; a validation failure
// leaves the line untouched.
type Line struct {
	// id uniquely identifies the line
	id kernel.UUID
	// sellerID groups lines that ship together in one batch
	sellerID string
	// skuID identifies the ordered product
	skuID string
	// orderedQty is the quantity placed on the original order
	orderedQty int
	// shippedQty is the quantity already delivered to the customer
	shippedQty int
	// storeHeldQty is the portion retained at a physical outlet
	storeHeldQty int
	// actualStockQty is the on-hand stock snapshot for display
	actualStockQty int
	// delayFlag marks the line as delayed by the seller
	delayFlag bool
	// bundleFlag marks the seller group as tracked/shipped together
	bundleFlag bool
	// rank is the position of the line within its seller group, 1-based
	rank int
	// version supports optimistic concurrency in the persistence adapter
	version int
	// lastModified records the time of the last engine mutation
	lastModified time.Time
	// lastActor records the opaque actor of the last mutation, audit only
	lastActor string

	guard guard.ConstructorGuard
}

// NewLine creates a fresh backorder line for a newly placed order.
// Nothing is shipped yet; the store-held portion may already be known.
func NewLine(id kernel.UUID, sellerID, skuID string, orderedQty, storeHeldQty, rank int) (*Line, error) {
	line := &Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setSellerID(sellerID),
		line.setSkuID(skuID),
		line.setRank(rank),
	); err != nil {
		return nil, err
	}

	if orderedQty <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("orderedQty",
			errors.New("ordered quantity must be greater than 0"))
	}
	line.orderedQty = orderedQty
	line.storeHeldQty = storeHeldQty

	if err := line.ValidateLedger(); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLine reconstructs a line from persistence, including quantities
// already shipped, flags, and the optimistic-concurrency version.
func RestoreLine(
	id kernel.UUID,
	sellerID, skuID string,
	orderedQty, shippedQty, storeHeldQty, actualStockQty int,
	delayFlag, bundleFlag bool,
	rank, version int,
	lastModified time.Time,
	lastActor string,
) (*Line, error) {
	line := &Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setSellerID(sellerID),
		line.setSkuID(skuID),
		line.setRank(rank),
	); err != nil {
		return nil, err
	}

	line.orderedQty = orderedQty
	line.shippedQty = shippedQty
	line.storeHeldQty = storeHeldQty
	line.actualStockQty = actualStockQty
	line.delayFlag = delayFlag
	line.bundleFlag = bundleFlag
	line.version = version
	line.lastModified = lastModified
	line.lastActor = lastActor

	if err := line.ValidateLedger(); err != nil {
		return nil, err
	}

	return line, nil
}

// Validate ensures the line was created through a constructor.
func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// IsEqual compares two lines by identity.
func (l *Line) IsEqual(other *Line) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the line identifier.
func (l *Line) ID() kernel.UUID { return l.id }

// SellerID returns the seller the line belongs to.
func (l *Line) SellerID() string { return l.sellerID }

// SkuID returns the ordered product identifier.
func (l *Line) SkuID() string { return l.skuID }

// OrderedQty returns the originally ordered quantity.
func (l *Line) OrderedQty() int { return l.orderedQty }

// ShippedQty returns the quantity already delivered.
func (l *Line) ShippedQty() int { return l.shippedQty }

// StoreHeldQty returns the quantity retained at a physical outlet.
func (l *Line) StoreHeldQty() int { return l.storeHeldQty }

// ActualStockQty returns the on-hand stock snapshot.
func (l *Line) ActualStockQty() int { return l.actualStockQty }

// DelayFlag reports whether the line is marked delayed.
func (l *Line) DelayFlag() bool { return l.delayFlag }

// BundleFlag reports whether the seller group is marked as a bundle.
func (l *Line) BundleFlag() bool { return l.bundleFlag }

// Rank returns the 1-based position within the seller group.
func (l *Line) Rank() int { return l.rank }

// IsPrimary reports whether this is the seller group's primary line.
func (l *Line) IsPrimary() bool { return l.rank == primaryLineRank }

// Version returns the optimistic-concurrency version loaded from storage.
func (l *Line) Version() int { return l.version }

// LastModified returns the time of the last engine mutation.
func (l *Line) LastModified() time.Time { return l.lastModified }

// LastActor returns the opaque actor of the last mutation.
func (l *Line) LastActor() string { return l.lastActor }

// RemainingQty derives the outstanding quantity from the ledger.
func (l *Line) RemainingQty() int {
	return ComputeRemaining(l.orderedQty, l.shippedQty, l.storeHeldQty)
}

// Status derives the fulfillment state from the ledger.
func (l *Line) Status() Status {
	return StatusFor(l.orderedQty, l.shippedQty, l.storeHeldQty)
}

// ValidateLedger checks the ledger invariant on the current quantities.
// Returns an error wrapping ErrInvalidQuantity when the ledger does not
// balance.
func (l *Line) ValidateLedger() error {
	return ValidateLedger(l.orderedQty, l.shippedQty, l.storeHeldQty)
}

// Ship delivers the entire outstanding quantity of the line.
//
// Fails with ErrNothingToShip when nothing remains outstanding. On success
// the shipped quantity absorbs the full remaining quantity, so the line
// becomes FullyShipped and the ledger still balances.
func (l *Line) Ship(actor string) error {
	remaining := l.RemainingQty()
	if remaining <= 0 {
		return ErrNothingToShip
	}

	l.shippedQty += remaining
	l.touch(actor)
	return nil
}

// CancelShipment is the compensating operation for Ship: it returns the
// entire shipped quantity to outstanding.
//
// Fails with ErrNothingToCancel when nothing has been shipped. When the
// line is bundled, the caller must confirm explicitly; otherwise the call
// fails with ErrBundleConfirmationRequired and nothing changes.
func (l *Line) CancelShipment(actor string, confirm bool) error {
	if l.shippedQty == 0 {
		return ErrNothingToCancel
	}
	if l.bundleFlag && !confirm {
		return ErrBundleConfirmationRequired
	}

	l.shippedQty = 0
	l.touch(actor)
	return nil
}

// SetBundleFlag marks or unmarks the seller group as a bundle.
// Only the primary line (rank 1) may change the flag; any other line fails
// with ErrNotPrimaryLine. The flag is informational: shipment batches do
// not require complete-group shipment for bundled lines.
func (l *Line) SetBundleFlag(value bool) error {
	if !l.IsPrimary() {
		return ErrNotPrimaryLine
	}

	l.bundleFlag = value
	return nil
}

// SetDelayFlag marks or unmarks the line as delayed by the seller.
func (l *Line) SetDelayFlag(value bool) {
	l.delayFlag = value
}

// touch records mutation audit data.
func (l *Line) touch(actor string) {
	l.lastModified = time.Now()
	l.lastActor = actor
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setSellerID(sellerID string) error {
	if sellerID == "" {
		return errSellerIDIsRequired
	}
	l.sellerID = sellerID
	return nil
}

func (l *Line) setSkuID(skuID string) error {
	if skuID == "" {
		return errSkuIDIsRequired
	}
	l.skuID = skuID
	return nil
}

func (l *Line) setRank(rank int) error {
	if rank < primaryLineRank {
		return errs.NewValueIsInvalidErrorWithCause("rank",
			errors.New("rank must be 1 or greater"))
	}
	l.rank = rank
	return nil
}

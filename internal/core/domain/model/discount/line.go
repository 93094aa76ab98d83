package discount

import (
	"errors"
	"strings"

	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/pkg/errs"
	"orderops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Domain errors for discount line operations.
var (
	// ErrLineIsNotConstructed is returned when using a Line that was not
	// created via NewLine or RestoreLine.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine or RestoreLine constructor")
	// ErrInvalidDiscount is returned when an edited discount is not a
	// number. Prior discount, unit price, and amount are kept.
	ErrInvalidDiscount = errors.New("discount amount must be a number")

	errFactoryIDIsRequired = errs.NewValueIsRequiredError("factoryId")
	errSkuIDIsRequired     = errs.NewValueIsRequiredError("skuId")
)

// Line is the aggregate root for one discounted order line during an
// editing session. The base unit price is the fixed cost basis; the
// editable discount drives the derived unit price and amount:
//
//	unitPrice = baseUnitPrice - discountAmt
//	amount    = quantity > 0 ? unitPrice * quantity : 0
//
// The override flag starts false, is never set by the one-time
// default-application pass, and becomes true exactly when a user edit
// results in a discount that differs from the auto-applied default.
type Line struct {
	id            kernel.UUID
	factoryID     string
	skuID         string
	baseUnitPrice decimal.Decimal
	quantity      int
	// discountAmt is nil until a default is applied or a user edits it
	discountAmt *decimal.Decimal
	// appliedDefault remembers the value the default pass applied, so an
	// edit can be compared against it; nil when no default was applied
	appliedDefault *decimal.Decimal
	overrideFlag   bool
	version        int

	guard guard.ConstructorGuard
}

// NewLine creates a discount line with no discount applied yet.
func NewLine(id kernel.UUID, factoryID, skuID string, baseUnitPrice decimal.Decimal, quantity int) (*Line, error) {
	line := &Line{
		guard: guard.NewConstructorGuard(),
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	line.id = id

	if factoryID == "" {
		return nil, errFactoryIDIsRequired
	}
	line.factoryID = factoryID

	if skuID == "" {
		return nil, errSkuIDIsRequired
	}
	line.skuID = skuID

	if baseUnitPrice.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("baseUnitPrice",
			errors.New("base unit price cannot be negative"))
	}
	line.baseUnitPrice = baseUnitPrice
	line.quantity = quantity

	return line, nil
}

// RestoreLine reconstructs a line from persistence.
func RestoreLine(
	id kernel.UUID,
	factoryID, skuID string,
	baseUnitPrice decimal.Decimal,
	quantity int,
	discountAmt, appliedDefault *decimal.Decimal,
	overrideFlag bool,
	version int,
) (*Line, error) {
	line, err := NewLine(id, factoryID, skuID, baseUnitPrice, quantity)
	if err != nil {
		return nil, err
	}

	line.discountAmt = discountAmt
	line.appliedDefault = appliedDefault
	line.overrideFlag = overrideFlag
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

// FactoryID returns the factory the line's pricing defaults key on.
func (l *Line) FactoryID() string { return l.factoryID }

// SkuID returns the product identifier.
func (l *Line) SkuID() string { return l.skuID }

// BaseUnitPrice returns the fixed cost basis.
func (l *Line) BaseUnitPrice() decimal.Decimal { return l.baseUnitPrice }

// Quantity returns the ordered quantity.
func (l *Line) Quantity() int { return l.quantity }

// DiscountAmt returns the current discount, or zero when unset.
func (l *Line) DiscountAmt() decimal.Decimal {
	if l.discountAmt == nil {
		return decimal.Zero
	}
	return *l.discountAmt
}

// DiscountIsSet reports whether any discount (default or edit) exists.
func (l *Line) DiscountIsSet() bool { return l.discountAmt != nil }

// AppliedDefault returns the auto-applied default and whether one exists.
func (l *Line) AppliedDefault() (decimal.Decimal, bool) {
	if l.appliedDefault == nil {
		return decimal.Zero, false
	}
	return *l.appliedDefault, true
}

// OverrideFlag reports whether the current discount is a user override of
// the system default.
func (l *Line) OverrideFlag() bool { return l.overrideFlag }

// Version returns the optimistic-concurrency version loaded from storage.
func (l *Line) Version() int { return l.version }

// UnitPrice derives the effective unit price from the cost basis and the
// current discount.
func (l *Line) UnitPrice() decimal.Decimal {
	return l.baseUnitPrice.Sub(l.DiscountAmt())
}

// Amount derives the line total: unit price times quantity, or zero for a
// non-positive quantity.
func (l *Line) Amount() decimal.Decimal {
	if l.quantity <= 0 {
		return decimal.Zero
	}
	return l.UnitPrice().Mul(decimal.NewFromInt(int64(l.quantity)))
}

// EditDiscount applies a user-entered discount given as raw text.
//
// Non-numeric input fails with ErrInvalidDiscount and the prior discount,
// unit price, and amount are kept. On success the discount is stored, the
// derived values reflect it, and the override flag is recomputed: true
// when the entered value differs from the auto-applied default (or no
// default was applied), false when it matches the default again.
func (l *Line) EditDiscount(raw string) error {
	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return ErrInvalidDiscount
	}

	l.discountAmt = &value
	l.overrideFlag = l.appliedDefault == nil || !value.Equal(*l.appliedDefault)
	return nil
}

// ApplyDefaultIfUnset applies the stored factory/sku default exactly once,
// before first display. It is a no-op when a discount is already present,
// and it never sets the override flag. Reports whether the default was
// applied.
func (l *Line) ApplyDefaultIfUnset(def decimal.Decimal) bool {
	if l.discountAmt != nil {
		return false
	}

	applied := def
	l.discountAmt = &applied
	l.appliedDefault = &applied
	return true
}

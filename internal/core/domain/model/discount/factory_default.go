package discount

import (
	"errors"

	"orderops/internal/pkg/errs"
	"orderops/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrFactoryDefaultIsNotConstructed is returned when using a
// FactoryDefault that was not created via NewFactoryDefault.
var ErrFactoryDefaultIsNotConstructed = errors.New("FactoryDefault must be created via NewFactoryDefault constructor")

// FactoryDefault is the stored default discount for one factory/sku pair.
// applyDefaultIfUnset uses it for lines that have no discount yet; storing
// a new default is an administrative operation and does not touch lines
// already displayed.
type FactoryDefault struct {
	factoryID   string
	skuID       string
	discountAmt decimal.Decimal

	guard guard.ConstructorGuard
}

// NewFactoryDefault creates a default discount for a factory/sku pair.
func NewFactoryDefault(factoryID, skuID string, discountAmt decimal.Decimal) (*FactoryDefault, error) {
	if factoryID == "" {
		return nil, errFactoryIDIsRequired
	}
	if skuID == "" {
		return nil, errSkuIDIsRequired
	}
	if discountAmt.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("discountAmt",
			errors.New("default discount cannot be negative"))
	}

	return &FactoryDefault{
		factoryID:   factoryID,
		skuID:       skuID,
		discountAmt: discountAmt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the default was created through the constructor.
func (d *FactoryDefault) Validate() error {
	if d == nil {
		return ErrFactoryDefaultIsNotConstructed
	}
	return d.guard.Validate(ErrFactoryDefaultIsNotConstructed)
}

// FactoryID returns the factory the default keys on.
func (d *FactoryDefault) FactoryID() string { return d.factoryID }

// SkuID returns the sku the default keys on.
func (d *FactoryDefault) SkuID() string { return d.skuID }

// DiscountAmt returns the default discount amount.
func (d *FactoryDefault) DiscountAmt() decimal.Decimal { return d.discountAmt }

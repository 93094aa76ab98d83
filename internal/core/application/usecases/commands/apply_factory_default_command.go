package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"orderops/internal/pkg/guard"
)

var (
	ErrApplyFactoryDefaultCommandIsNotConstructed = errors.New(
		"ApplyFactoryDefaultCommand must be created via NewApplyFactoryDefaultCommand constructor",
	)
	ErrFactoryIDIsRequired = errors.New("factory id is required")
	ErrSkuIDIsRequired     = errors.New("sku id is required")
)

// ApplyFactoryDefaultCommand registers a default discount for a factory
// and SKU pair. The default is applied to lines whose discount was never
// decided; it never overwrites an explicit edit.
type ApplyFactoryDefaultCommand struct { //nolint:recvcheck //using for validation
	factoryID   string
	skuID       string
	discountAmt decimal.Decimal

	guard guard.ConstructorGuard
}

// NewApplyFactoryDefaultCommand creates a command to register a default
// discount. The amount itself is validated by the FactoryDefault
// aggregate when the handler builds it.
func NewApplyFactoryDefaultCommand(
	factoryID string,
	skuID string,
	discountAmt decimal.Decimal,
) (ApplyFactoryDefaultCommand, error) {
	defaultCommand := ApplyFactoryDefaultCommand{
		discountAmt: discountAmt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		defaultCommand.setFactoryID(factoryID),
		defaultCommand.setSkuID(skuID),
	); err != nil {
		return ApplyFactoryDefaultCommand{}, err
	}

	return defaultCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrApplyFactoryDefaultCommandIsNotConstructed if validation fails.
func (c ApplyFactoryDefaultCommand) Validate() error {
	return c.guard.Validate(ErrApplyFactoryDefaultCommandIsNotConstructed)
}

// FactoryID returns the factory the default belongs to.
func (c ApplyFactoryDefaultCommand) FactoryID() string {
	return c.factoryID
}

// SkuID returns the SKU the default applies to.
func (c ApplyFactoryDefaultCommand) SkuID() string {
	return c.skuID
}

// DiscountAmt returns the default per-unit discount amount.
func (c ApplyFactoryDefaultCommand) DiscountAmt() decimal.Decimal {
	return c.discountAmt
}

func (c *ApplyFactoryDefaultCommand) setFactoryID(factoryID string) error {
	if factoryID == "" {
		return ErrFactoryIDIsRequired
	}

	c.factoryID = factoryID
	return nil
}

func (c *ApplyFactoryDefaultCommand) setSkuID(skuID string) error {
	if skuID == "" {
		return ErrSkuIDIsRequired
	}

	c.skuID = skuID
	return nil
}

package commands

import (
	"errors"

	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/pkg/guard"
)

var ErrEditDiscountCommandIsNotConstructed = errors.New(
	"EditDiscountCommand must be created via NewEditDiscountCommand constructor",
)

// EditDiscountCommand sets the per-unit discount on one factory order
// line. The raw value is passed through as typed so a malformed amount
// is rejected by the aggregate without clobbering the stored discount.
type EditDiscountCommand struct { //nolint:recvcheck //using for validation
	lineID   kernel.UUID
	rawValue string

	guard guard.ConstructorGuard
}

// NewEditDiscountCommand creates a command to edit one line's discount.
func NewEditDiscountCommand(lineID kernel.UUID, rawValue string) (EditDiscountCommand, error) {
	editCommand := EditDiscountCommand{
		rawValue: rawValue,
		guard:    guard.NewConstructorGuard(),
	}

	if err := editCommand.setLineID(lineID); err != nil {
		return EditDiscountCommand{}, err
	}

	return editCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditDiscountCommandIsNotConstructed if validation fails.
func (c EditDiscountCommand) Validate() error {
	return c.guard.Validate(ErrEditDiscountCommandIsNotConstructed)
}

// LineID returns the identifier of the line being edited.
func (c EditDiscountCommand) LineID() kernel.UUID {
	return c.lineID
}

// RawValue returns the discount amount exactly as entered.
func (c EditDiscountCommand) RawValue() string {
	return c.rawValue
}

func (c *EditDiscountCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

package commands

import (
	"errors"

	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/pkg/guard"
)

var ErrSetBundleFlagCommandIsNotConstructed = errors.New(
	"SetBundleFlagCommand must be created via NewSetBundleFlagCommand constructor",
)

// SetBundleFlagCommand toggles the bundle marker on a backorder line.
// Only the primary line of an order may carry the marker.
type SetBundleFlagCommand struct { //nolint:recvcheck //using for validation
	lineID kernel.UUID
	value  bool

	guard guard.ConstructorGuard
}

// NewSetBundleFlagCommand creates a command to set or clear a line's
// bundle flag.
func NewSetBundleFlagCommand(lineID kernel.UUID, value bool) (SetBundleFlagCommand, error) {
	flagCommand := SetBundleFlagCommand{
		value: value,
		guard: guard.NewConstructorGuard(),
	}

	if err := flagCommand.setLineID(lineID); err != nil {
		return SetBundleFlagCommand{}, err
	}

	return flagCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetBundleFlagCommandIsNotConstructed if validation fails.
func (c SetBundleFlagCommand) Validate() error {
	return c.guard.Validate(ErrSetBundleFlagCommandIsNotConstructed)
}

// LineID returns the identifier of the line to flag.
func (c SetBundleFlagCommand) LineID() kernel.UUID {
	return c.lineID
}

// Value returns the desired flag state.
func (c SetBundleFlagCommand) Value() bool {
	return c.value
}

func (c *SetBundleFlagCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

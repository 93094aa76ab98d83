package commands

import (
	"errors"

	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/pkg/guard"
)

var ErrEditReconciliationCommandIsNotConstructed = errors.New(
	"EditReconciliationCommand must be created via NewEditReconciliationCommand constructor",
)

// EditReconciliationCommand records a counted quantity against one
// reconciliation line. The raw value is passed through as typed by the
// user; the aggregate decides whether it is acceptable.
type EditReconciliationCommand struct { //nolint:recvcheck //using for validation
	lineID   kernel.UUID
	rawValue string

	guard guard.ConstructorGuard
}

// NewEditReconciliationCommand creates a command to edit one line's
// counted quantity. The raw value is deliberately not parsed here: a
// malformed value must reach the aggregate so the rejection keeps the
// previous quantity intact.
func NewEditReconciliationCommand(lineID kernel.UUID, rawValue string) (EditReconciliationCommand, error) {
	editCommand := EditReconciliationCommand{
		rawValue: rawValue,
		guard:    guard.NewConstructorGuard(),
	}

	if err := editCommand.setLineID(lineID); err != nil {
		return EditReconciliationCommand{}, err
	}

	return editCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditReconciliationCommandIsNotConstructed if validation fails.
func (c EditReconciliationCommand) Validate() error {
	return c.guard.Validate(ErrEditReconciliationCommandIsNotConstructed)
}

// LineID returns the identifier of the line being edited.
func (c EditReconciliationCommand) LineID() kernel.UUID {
	return c.lineID
}

// RawValue returns the counted quantity exactly as entered.
func (c EditReconciliationCommand) RawValue() string {
	return c.rawValue
}

func (c *EditReconciliationCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

package commands

import (
	"errors"

	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/pkg/guard"
)

var ErrCommitReconciliationCommandIsNotConstructed = errors.New(
	"CommitReconciliationCommand must be created via NewCommitReconciliationCommand constructor",
)

// CommitReconciliationCommand finalizes a selection of reconciliation
// lines: their counted quantities become authoritative and the lines are
// locked against further edits. The selection commits atomically.
type CommitReconciliationCommand struct { //nolint:recvcheck //using for validation
	lineIDs []kernel.UUID
	actor   string

	guard guard.ConstructorGuard
}

// NewCommitReconciliationCommand creates a command to commit the given lines.
// Validates that at least one line is selected, every ID is a valid UUID,
// and the acting user is identified.
func NewCommitReconciliationCommand(lineIDs []kernel.UUID, actor string) (CommitReconciliationCommand, error) {
	commitCommand := CommitReconciliationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		commitCommand.setLineIDs(lineIDs),
		commitCommand.setActor(actor),
	); err != nil {
		return CommitReconciliationCommand{}, err
	}

	return commitCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCommitReconciliationCommandIsNotConstructed if validation fails.
func (c CommitReconciliationCommand) Validate() error {
	return c.guard.Validate(ErrCommitReconciliationCommandIsNotConstructed)
}

// LineIDs returns the identifiers of the lines to commit.
func (c CommitReconciliationCommand) LineIDs() []kernel.UUID {
	return c.lineIDs
}

// Actor returns the user committing the reconciliation.
func (c CommitReconciliationCommand) Actor() string {
	return c.actor
}

func (c *CommitReconciliationCommand) setLineIDs(lineIDs []kernel.UUID) error {
	if len(lineIDs) == 0 {
		return ErrNoSelection
	}

	for _, id := range lineIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.lineIDs = lineIDs
	return nil
}

func (c *CommitReconciliationCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}

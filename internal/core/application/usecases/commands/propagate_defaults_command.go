package commands

import (
	"errors"

	"orderops/internal/pkg/guard"
)

var ErrPropagateDefaultsCommandIsNotConstructed = errors.New(
	"PropagateDefaultsCommand must be created via NewPropagateDefaultsCommand constructor",
)

// PropagateDefaultsCommand triggers one sweep of factory default
// propagation: lines whose discount was never decided pick up the default
// configured for their factory and SKU. Explicit edits are never touched.
//
// Example:
//
//	cmd := NewPropagateDefaultsCommand()
//	handler := NewPropagateDefaultsCommandHandler(uowFactory)
//	applied, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("propagation sweep failed: %v", err)
//	}
type PropagateDefaultsCommand struct {
	guard guard.ConstructorGuard
}

// NewPropagateDefaultsCommand creates a new command to trigger default propagation.
// This is a parameterless command run periodically by the job scheduler.
func NewPropagateDefaultsCommand() PropagateDefaultsCommand {
	return PropagateDefaultsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrPropagateDefaultsCommandIsNotConstructed if validation fails.
func (c *PropagateDefaultsCommand) Validate() error {
	return c.guard.Validate(
		ErrPropagateDefaultsCommandIsNotConstructed,
	)
}

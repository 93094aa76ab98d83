package commands

import (
	"context"
)

// EditReconciliationResult is the recomputed state of a line after an
// accepted edit, for display back to the user.
type EditReconciliationResult struct {
	InputQty             int
	Diff                 int
	ChangedSinceBaseline bool
}

// EditReconciliationCommandHandler applies a counted-quantity edit to one
// reconciliation line and returns the recomputed diff.
type EditReconciliationCommandHandler struct {
	uowFactory ReconciliationUoWFactory
}

// NewEditReconciliationCommandHandler creates a handler for reconciliation edits.
func NewEditReconciliationCommandHandler(uowFactory ReconciliationUoWFactory) EditReconciliationCommandHandler {
	return EditReconciliationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the edit.
// A malformed or out-of-range value fails with reconciliation.ErrInvalidInput
// or reconciliation.ErrExceedsAvailable and the stored quantity is untouched.
// A locked line fails with reconciliation.ErrAlreadyLocked.
func (h EditReconciliationCommandHandler) Handle(
	ctx context.Context,
	command EditReconciliationCommand,
) (EditReconciliationResult, error) {
	if err := command.Validate(); err != nil {
		return EditReconciliationResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return EditReconciliationResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reconciliationRepo := uow.ReconciliationRepository()

	line, err := reconciliationRepo.Get(ctx, command.LineID())
	if err != nil {
		return EditReconciliationResult{}, err
	}

	if err := line.EditInput(command.RawValue()); err != nil {
		return EditReconciliationResult{}, err
	}

	if err := reconciliationRepo.Update(ctx, line); err != nil {
		return EditReconciliationResult{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return EditReconciliationResult{}, err
	}

	return EditReconciliationResult{
		InputQty:             line.InputQty(),
		Diff:                 line.Diff(),
		ChangedSinceBaseline: line.ChangedSinceBaseline(),
	}, nil
}

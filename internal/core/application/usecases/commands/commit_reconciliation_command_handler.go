package commands

import (
	"context"
	"fmt"

	"orderops/internal/core/domain/model/reconciliation"
)

// CommitReconciliationCommandHandler finalizes a selection of
// reconciliation lines atomically. Every selected line must still be
// editable; one already-locked line fails the whole commit and no line
// changes state.
type CommitReconciliationCommandHandler struct {
	uowFactory ReconciliationUoWFactory
}

// NewCommitReconciliationCommandHandler creates a handler for reconciliation commits.
func NewCommitReconciliationCommandHandler(uowFactory ReconciliationUoWFactory) CommitReconciliationCommandHandler {
	return CommitReconciliationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the commit.
// Loads all selected lines with row locks, verifies none is locked, then
// locks each one within a single transaction. Returns
// reconciliation.ErrAlreadyLocked when any line was committed before.
func (h CommitReconciliationCommandHandler) Handle(ctx context.Context, command CommitReconciliationCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reconciliationRepo := uow.ReconciliationRepository()

	lines, err := reconciliationRepo.GetBatchForUpdate(ctx, command.LineIDs())
	if err != nil {
		return err
	}

	// All-or-nothing: verify the whole selection before locking any line.
	for _, line := range lines {
		if line.Locked() {
			return fmt.Errorf("%w: line %s", reconciliation.ErrAlreadyLocked, line.ID())
		}
	}

	for _, line := range lines {
		if err := line.Lock(command.Actor()); err != nil {
			return err
		}

		if err := reconciliationRepo.Update(ctx, line); err != nil {
			return err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

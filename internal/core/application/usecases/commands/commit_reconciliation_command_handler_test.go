package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"orderops/internal/core/application/usecases/commands"
	"orderops/internal/core/domain/model/kernel"
	"orderops/internal/core/domain/model/reconciliation"
)

func TestCommitReconciliationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	lineA := newReconLine(t)
	lineB := newReconLine(t)
	ids := []kernel.UUID{lineA.ID(), lineB.ID()}
	cmd, err := commands.NewCommitReconciliationCommand(ids, "j.tanaka")
	require.NoError(t, err)

	repo := new(MockReconciliationRepository)
	uow := new(MockReconciliationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReconciliationRepository").Return(repo).Once(),
		repo.On("GetBatchForUpdate", mock.Anything, ids).
			Return([]*reconciliation.Line{lineA, lineB}, nil).Once(),
		repo.On("Update", mock.Anything, lineA).Return(nil).Once(),
		repo.On("Update", mock.Anything, lineB).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReconciliationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCommitReconciliationCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.True(t, lineA.Locked())
	require.True(t, lineB.Locked())
	require.Equal(t, "j.tanaka", lineA.LockedBy())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCommitReconciliationCommandHandler_Handle_OneLineAlreadyLocked(t *testing.T) {
	ctx := t.Context()
	lineA := newReconLine(t)
	lineB := newLockedReconLine(t)
	ids := []kernel.UUID{lineA.ID(), lineB.ID()}
	cmd, err := commands.NewCommitReconciliationCommand(ids, "j.tanaka")
	require.NoError(t, err)

	repo := new(MockReconciliationRepository)
	uow := new(MockReconciliationUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ReconciliationRepository").Return(repo).Once(),
		repo.On("GetBatchForUpdate", mock.Anything, ids).
			Return([]*reconciliation.Line{lineA, lineB}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReconciliationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCommitReconciliationCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, reconciliation.ErrAlreadyLocked)

	// The unlocked line did not lock.
	require.False(t, lineA.Locked())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewCommitReconciliationCommand_EmptySelection(t *testing.T) {
	_, err := commands.NewCommitReconciliationCommand(nil, "j.tanaka")
	require.ErrorIs(t, err, commands.ErrNoSelection)
}

func TestCommitReconciliationCommand_NotConstructed(t *testing.T) {
	var cmd commands.CommitReconciliationCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCommitReconciliationCommandIsNotConstructed)
}

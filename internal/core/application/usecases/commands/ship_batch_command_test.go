package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"orderops/internal/core/application/usecases/commands"
	"orderops/internal/core/domain/model/kernel"
)

func TestNewShipBatchCommand(t *testing.T) {
	ids := []kernel.UUID{kernel.NewUUID(), kernel.NewUUID()}

	cmd, err := commands.NewShipBatchCommand(ids, "j.tanaka")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, ids, cmd.LineIDs())
	require.Equal(t, "j.tanaka", cmd.Actor())
}

func TestNewShipBatchCommand_EmptySelection(t *testing.T) {
	_, err := commands.NewShipBatchCommand(nil, "j.tanaka")
	require.ErrorIs(t, err, commands.ErrNoSelection)
}

func TestNewShipBatchCommand_EmptyActor(t *testing.T) {
	_, err := commands.NewShipBatchCommand([]kernel.UUID{kernel.NewUUID()}, "")
	require.ErrorIs(t, err, commands.ErrActorIsRequired)
}

func TestShipBatchCommand_NotConstructed(t *testing.T) {
	var cmd commands.ShipBatchCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrShipBatchCommandIsNotConstructed)
}

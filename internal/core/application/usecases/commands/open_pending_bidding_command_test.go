package commands_test

import (
	"testing"

	"cctexpress/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/require"
)

func TestNewOpenPendingBiddingCommand(t *testing.T) {
	cmd := commands.NewOpenPendingBiddingCommand()

	require.NoError(t, cmd.Validate())
}

func TestOpenPendingBiddingCommand_ValidateZeroValue(t *testing.T) {
	var cmd commands.OpenPendingBiddingCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrOpenPendingBiddingCommandIsNotConstructed)
}

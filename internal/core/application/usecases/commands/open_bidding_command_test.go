package commands_test

import (
	"testing"

	"cctexpress/internal/core/application/usecases/commands"
	"cctexpress/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenBiddingCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()

	cmd, err := commands.NewOpenBiddingCommand(orderID)

	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.NoError(t, cmd.Validate())
}

func TestNewOpenBiddingCommand_ZeroOrderID(t *testing.T) {
	cmd, err := commands.NewOpenBiddingCommand(kernel.UUID{})

	require.Error(t, err)
	assert.Zero(t, cmd)
}

func TestOpenBiddingCommand_ValidateZeroValue(t *testing.T) {
	var cmd commands.OpenBiddingCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrOpenBiddingCommandIsNotConstructed)
}

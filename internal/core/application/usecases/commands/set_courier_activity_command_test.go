package commands_test

import (
	"testing"

	"cctexpress/internal/core/application/usecases/commands"
	"cctexpress/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetCourierActivityCommand_ValidInput(t *testing.T) {
	courierID := kernel.NewUUID()

	cmd, err := commands.NewSetCourierActivityCommand(courierID, false)

	require.NoError(t, err)
	assert.Equal(t, courierID, cmd.CourierID())
	assert.False(t, cmd.Active())
	assert.NoError(t, cmd.Validate())
}

func TestNewSetCourierActivityCommand_ZeroCourierID(t *testing.T) {
	cmd, err := commands.NewSetCourierActivityCommand(kernel.UUID{}, true)

	require.Error(t, err)
	assert.Zero(t, cmd)
}

func TestSetCourierActivityCommand_ValidateZeroValue(t *testing.T) {
	var cmd commands.SetCourierActivityCommand

	require.ErrorIs(t, cmd.Validate(), commands.ErrSetCourierActivityCommandIsNotConstructed)
}

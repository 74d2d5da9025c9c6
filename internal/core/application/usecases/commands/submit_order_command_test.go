package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	userID := kernel.NewUUID()
	addressID := kernel.NewUUID()

	cmd, err := commands.NewSubmitOrderCommand(orderID, userID, addressID)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, addressID, cmd.AddressID())
}

func TestNewSubmitOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewSubmitOrderCommand(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewSubmitOrderCommand_InvalidUserID(t *testing.T) {
	_, err := commands.NewSubmitOrderCommand(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
}

func TestNewSubmitOrderCommand_InvalidAddressID(t *testing.T) {
	_, err := commands.NewSubmitOrderCommand(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
}

func TestSubmitOrderCommand_NotConstructed(t *testing.T) {
	cmd := commands.SubmitOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrSubmitOrderCommandIsNotConstructed)
}

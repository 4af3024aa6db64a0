package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClaimOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	cmd, err := commands.NewClaimOrderCommand(orderID, carrierID)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, carrierID, cmd.CarrierID())
}

func TestNewClaimOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewClaimOrderCommand(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewClaimOrderCommand_InvalidCarrierID(t *testing.T) {
	_, err := commands.NewClaimOrderCommand(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestClaimOrderCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.ClaimOrderCommand
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrClaimOrderCommandIsNotConstructed)
}

func TestClaimResult_String(t *testing.T) {
	assert.Equal(t, "claimed", commands.ClaimResultClaimed.String())
	assert.Equal(t, "already_claimed", commands.ClaimResultAlreadyClaimed.String())
	assert.Equal(t, "not_found", commands.ClaimResultNotFound.String())
}

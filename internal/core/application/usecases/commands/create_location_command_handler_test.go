package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stretchr/testify/mock"
)

func TestNewCreateLocationCommand_ValidInput(t *testing.T) {
	locationID := kernel.NewUUID()
	cmd, err := commands.NewCreateLocationCommand(
		locationID, "Central Warehouse", "100 Industrial Ave", "Springfield", "IL", "62701")
	require.NoError(t, err)
	assert.Equal(t, locationID, cmd.LocationID())
	assert.Equal(t, "Central Warehouse", cmd.Name())
	assert.Equal(t, "62701", cmd.ZipCode())
}

func TestNewCreateLocationCommand_InvalidID(t *testing.T) {
	_, err := commands.NewCreateLocationCommand(
		kernel.UUID{}, "Central Warehouse", "100 Industrial Ave", "Springfield", "IL", "")
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateLocationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateLocationCommand(
		kernel.NewUUID(), "Central Warehouse", "100 Industrial Ave", "Springfield", "IL", "")
	require.NoError(t, err)

	locationRepo := new(MockLocationRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LocationRepository").Return(locationRepo).Once(),
		locationRepo.On("Add", mock.Anything, mock.AnythingOfType("*location.Location")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockLocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateLocationCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, created.IsActive())
	locationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateLocationCommandHandler_Handle_MissingRequiredFields(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateLocationCommand(
		kernel.NewUUID(), "", "100 Industrial Ave", "Springfield", "IL", "")
	require.NoError(t, err)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateLocationCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	uow.AssertExpectations(t)
}

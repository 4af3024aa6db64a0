package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stretchr/testify/mock"
)

func TestNewRegisterCarrierCommand_ValidInput(t *testing.T) {
	carrierID := kernel.NewUUID()
	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCarrierCommand(carrierID, userID, "truck", "ABC1D23", "CNH123")
	require.NoError(t, err)
	assert.Equal(t, carrierID, cmd.CarrierID())
	assert.Equal(t, userID, cmd.UserID())
	assert.Equal(t, "truck", cmd.VehicleType())
	assert.Equal(t, "ABC1D23", cmd.VehiclePlate())
	assert.Equal(t, "CNH123", cmd.DriverLicense())
}

func TestNewRegisterCarrierCommand_RequiredFields(t *testing.T) {
	_, err := commands.NewRegisterCarrierCommand(kernel.NewUUID(), kernel.NewUUID(), "", "ABC1D23", "")
	require.ErrorIs(t, err, commands.ErrVehicleTypeIsRequired)

	_, err = commands.NewRegisterCarrierCommand(kernel.NewUUID(), kernel.NewUUID(), "truck", "", "")
	require.ErrorIs(t, err, commands.ErrVehiclePlateIsRequired)
}

func TestRegisterCarrierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCarrierCommand(kernel.NewUUID(), userID, "truck", "ABC1D23", "")
	require.NoError(t, err)

	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(carrierRepo).Once(),
		carrierRepo.On("GetByUserID", mock.Anything, userID).
			Return(nil, errs.NewObjectNotFoundError("userID", userID)).Once(),
		uow.On("CarrierRepository").Return(carrierRepo).Once(),
		carrierRepo.On("Add", mock.Anything, mock.AnythingOfType("*carrier.Carrier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCarrierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterCarrierCommandHandler(factory)
	registered, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, registered.IsActive())
	assert.InDelta(t, 5.0, registered.Rating(), 0.001)
	carrierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterCarrierCommandHandler_Handle_AlreadyRegistered(t *testing.T) {
	ctx := t.Context()
	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCarrierCommand(kernel.NewUUID(), userID, "truck", "ABC1D23", "")
	require.NoError(t, err)

	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(carrierRepo).Once(),
		carrierRepo.On("GetByUserID", mock.Anything, userID).Return(activeCarrier(t, userID), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCarrierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterCarrierCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrCarrierAlreadyRegistered)
	carrierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

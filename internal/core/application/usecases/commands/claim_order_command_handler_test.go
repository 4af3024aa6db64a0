package commands_test

import (
	"errors"
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func activeCarrier(t *testing.T, userID kernel.UUID) *carrier.Carrier {
	t.Helper()
	c, err := carrier.NewCarrier(kernel.NewUUID(), userID, "truck", "ABC1D23", "")
	require.NoError(t, err)
	return c
}

func TestClaimOrderCommandHandler_Handle_Claimed(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	cmd, err := commands.NewClaimOrderCommand(orderID, carrierID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(carrierRepo).Once(),
		carrierRepo.On("GetByUserID", mock.Anything, carrierID).Return(activeCarrier(t, carrierID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("UpdateIf", mock.Anything, orderID,
			order.Expectation{Status: order.StatusPending, CarrierIsNull: true},
			order.Change{Status: order.StatusAccepted, CarrierID: &carrierID},
		).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, commands.ClaimResultClaimed, result)
	orderRepo.AssertExpectations(t)
	carrierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_AlreadyClaimed(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	cmd, err := commands.NewClaimOrderCommand(orderID, carrierID)
	require.NoError(t, err)

	rivalID := kernel.NewUUID()
	claimedOrder, err := order.NewOrder(
		orderID, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"pallet of ceramics", 10, 70, "")
	require.NoError(t, err)
	require.NoError(t, claimedOrder.Claim(rivalID))

	orderRepo := new(MockOrderRepository)
	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(carrierRepo).Once(),
		carrierRepo.On("GetByUserID", mock.Anything, carrierID).Return(activeCarrier(t, carrierID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("UpdateIf", mock.Anything, orderID, mock.Anything, mock.Anything).Return(false, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(claimedOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, commands.ClaimResultAlreadyClaimed, result)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	cmd, err := commands.NewClaimOrderCommand(orderID, carrierID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(carrierRepo).Once(),
		carrierRepo.On("GetByUserID", mock.Anything, carrierID).Return(activeCarrier(t, carrierID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("UpdateIf", mock.Anything, orderID, mock.Anything, mock.Anything).Return(false, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, commands.ClaimResultNotFound, result)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_InactiveCarrier(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	cmd, err := commands.NewClaimOrderCommand(orderID, carrierID)
	require.NoError(t, err)

	inactive := activeCarrier(t, carrierID)
	inactive.Deactivate()

	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(carrierRepo).Once(),
		carrierRepo.On("GetByUserID", mock.Anything, carrierID).Return(inactive, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Equal(t, commands.ClaimResultUnknown, result)
	uow.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_UnknownCarrier(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	cmd, err := commands.NewClaimOrderCommand(orderID, carrierID)
	require.NoError(t, err)

	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(carrierRepo).Once(),
		carrierRepo.On("GetByUserID", mock.Anything, carrierID).
			Return(nil, errs.NewObjectNotFoundError("userID", carrierID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.Equal(t, commands.ClaimResultUnknown, result)
	uow.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	carrierID := kernel.NewUUID()
	cmd, err := commands.NewClaimOrderCommand(orderID, carrierID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	carrierRepo := new(MockCarrierRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CarrierRepository").Return(carrierRepo).Once(),
		carrierRepo.On("GetByUserID", mock.Anything, carrierID).Return(activeCarrier(t, carrierID), nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("UpdateIf", mock.Anything, orderID, mock.Anything, mock.Anything).
			Return(false, errors.New("update error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimOrderCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	require.Equal(t, commands.ClaimResultUnknown, result)
	uow.AssertExpectations(t)
}

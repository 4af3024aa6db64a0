package commands

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/pkg/errs"
)

// ErrCarrierAlreadyRegistered is returned when the owning user already has a
// carrier record.
var ErrCarrierAlreadyRegistered = errors.New("carrier already registered for this user")

// RegisterCarrierCommandHandler registers a new carrier. Each user identity
// owns at most one carrier record.
type RegisterCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

// NewRegisterCarrierCommandHandler creates a handler for carrier registration.
func NewRegisterCarrierCommandHandler(uowFactory CarrierUoWFactory) RegisterCarrierCommandHandler {
	return RegisterCarrierCommandHandler{uowFactory: uowFactory}
}

// Handle persists the new carrier record, rejecting a second registration for
// the same user.
func (h RegisterCarrierCommandHandler) Handle(ctx context.Context, cmd RegisterCarrierCommand) (*carrier.Carrier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existing, err := uow.CarrierRepository().GetByUserID(ctx, cmd.UserID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCarrierAlreadyRegistered
	}

	newCarrier, err := carrier.NewCarrier(
		cmd.CarrierID(),
		cmd.UserID(),
		cmd.VehicleType(),
		cmd.VehiclePlate(),
		cmd.DriverLicense(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.CarrierRepository().Add(ctx, newCarrier); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newCarrier, nil
}

package commands

import (
	"context"

	"freight/internal/core/domain/model/location"
)

// CreateLocationCommandHandler adds a new location to the directory.
type CreateLocationCommandHandler struct {
	uowFactory LocationUoWFactory
}

// NewCreateLocationCommandHandler creates a handler for location creation.
func NewCreateLocationCommandHandler(uowFactory LocationUoWFactory) CreateLocationCommandHandler {
	return CreateLocationCommandHandler{uowFactory: uowFactory}
}

// Handle persists the new location.
func (h CreateLocationCommandHandler) Handle(ctx context.Context, cmd CreateLocationCommand) (*location.Location, error) {
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

	newLocation, err := location.NewLocation(
		cmd.LocationID(),
		cmd.Name(),
		cmd.Address(),
		cmd.City(),
		cmd.State(),
		cmd.ZipCode(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.LocationRepository().Add(ctx, newLocation); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newLocation, nil
}

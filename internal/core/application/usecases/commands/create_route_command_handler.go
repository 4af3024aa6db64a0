package commands

import (
	"context"

	"freight/internal/core/domain/model/route"
)

// CreateRouteCommandHandler adds a new route to the catalog.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewCreateRouteCommandHandler creates a handler for route creation.
func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{uowFactory: uowFactory}
}

// Handle persists the new route. Pricing and distance bounds are enforced by
// the route aggregate.
func (h CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) (*route.Route, error) {
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

	newRoute, err := route.NewRoute(
		cmd.RouteID(),
		cmd.OriginID(),
		cmd.DestinationID(),
		cmd.DistanceKm(),
		cmd.EstimatedTimeHours(),
		cmd.BasePrice(),
		cmd.PricePerKg(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.RouteRepository().Add(ctx, newRoute); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newRoute, nil
}

package commands

import (
	"context"
)

// DeactivateRouteCommandHandler retires a route so new orders can no longer
// quote against it. Orders already created on the route keep their frozen
// price.
type DeactivateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewDeactivateRouteCommandHandler creates a handler for route deactivation.
func NewDeactivateRouteCommandHandler(uowFactory RouteUoWFactory) DeactivateRouteCommandHandler {
	return DeactivateRouteCommandHandler{uowFactory: uowFactory}
}

// Handle loads the route, marks it inactive, and persists the change.
// Deactivating an already inactive route is a no-op.
func (h DeactivateRouteCommandHandler) Handle(ctx context.Context, cmd DeactivateRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routeAggregate, err := uow.RouteRepository().Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	routeAggregate.Deactivate()

	if err = uow.RouteRepository().Update(ctx, routeAggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

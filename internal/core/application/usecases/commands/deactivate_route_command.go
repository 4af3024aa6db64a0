package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

// ErrDeactivateRouteCommandIsNotConstructed is returned when the command was
// not created via the constructor.
var ErrDeactivateRouteCommandIsNotConstructed = errors.New(
	"DeactivateRouteCommand must be created via NewDeactivateRouteCommand constructor",
)

// DeactivateRouteCommand retires a route from the catalog. Existing orders on
// the route keep their quoted price.
type DeactivateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeactivateRouteCommand creates a route deactivation command.
func NewDeactivateRouteCommand(routeID kernel.UUID) (DeactivateRouteCommand, error) {
	if err := routeID.Validate(); err != nil {
		return DeactivateRouteCommand{}, err
	}

	return DeactivateRouteCommand{
		routeID: routeID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeactivateRouteCommand) Validate() error {
	return c.guard.Validate(ErrDeactivateRouteCommandIsNotConstructed)
}

// RouteID returns the identifier of the route to deactivate.
func (c DeactivateRouteCommand) RouteID() kernel.UUID { return c.routeID }

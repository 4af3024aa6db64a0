package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

// ErrCreateRouteCommandIsNotConstructed is returned when the command was not
// created via the constructor.
var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// CreateRouteCommand adds a priced route between two locations to the catalog.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID            kernel.UUID
	originID           kernel.UUID
	destinationID      kernel.UUID
	distanceKm         float64
	estimatedTimeHours float64
	basePrice          float64
	pricePerKg         float64

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates a route creation command. Pricing and distance
// bounds are enforced by the route aggregate on Handle.
func NewCreateRouteCommand(
	routeID, originID, destinationID kernel.UUID,
	distanceKm, estimatedTimeHours, basePrice, pricePerKg float64,
) (CreateRouteCommand, error) {
	cmd := CreateRouteCommand{
		distanceKm:         distanceKm,
		estimatedTimeHours: estimatedTimeHours,
		basePrice:          basePrice,
		pricePerKg:         pricePerKg,
		guard:              guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setOriginID(originID),
		cmd.setDestinationID(destinationID),
	); err != nil {
		return CreateRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

// RouteID returns the identifier assigned to the new route.
func (c CreateRouteCommand) RouteID() kernel.UUID { return c.routeID }

// OriginID returns the origin location identifier.
func (c CreateRouteCommand) OriginID() kernel.UUID { return c.originID }

// DestinationID returns the destination location identifier.
func (c CreateRouteCommand) DestinationID() kernel.UUID { return c.destinationID }

// DistanceKm returns the route distance in kilometers.
func (c CreateRouteCommand) DistanceKm() float64 { return c.distanceKm }

// EstimatedTimeHours returns the estimated travel time in hours.
func (c CreateRouteCommand) EstimatedTimeHours() float64 { return c.estimatedTimeHours }

// BasePrice returns the fixed price component.
func (c CreateRouteCommand) BasePrice() float64 { return c.basePrice }

// PricePerKg returns the per-kilogram price component.
func (c CreateRouteCommand) PricePerKg() float64 { return c.pricePerKg }

func (c *CreateRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	c.routeID = routeID
	return nil
}

func (c *CreateRouteCommand) setOriginID(originID kernel.UUID) error {
	if err := originID.Validate(); err != nil {
		return err
	}
	c.originID = originID
	return nil
}

func (c *CreateRouteCommand) setDestinationID(destinationID kernel.UUID) error {
	if err := destinationID.Validate(); err != nil {
		return err
	}
	c.destinationID = destinationID
	return nil
}

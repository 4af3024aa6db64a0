// Package route contains the Route entity of the route catalog: a priced
// origin/destination pairing with distance and time estimates. Routes are
// append-mostly; deactivation hides them from new orders without affecting
// orders already priced against them.
package route

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// ErrRouteIsNotConstructed is returned when a Route instance was not created
// through NewRoute or RestoreRoute.
var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute or RestoreRoute")

// Route is a priced lane between two locations. Orders are quoted as
// base price plus price-per-kg times weight; the quote is frozen into the
// order, so later price edits never touch existing orders.
type Route struct {
	id                 kernel.UUID
	originID           kernel.UUID
	destinationID      kernel.UUID
	distanceKm         float64
	estimatedTimeHours float64
	basePrice          float64
	pricePerKg         float64
	active             bool

	isConstructed bool
}

// NewRoute creates an active Route. Origin and destination must differ,
// distance and time must be positive, prices must not be negative.
func NewRoute(
	id kernel.UUID,
	originID kernel.UUID,
	destinationID kernel.UUID,
	distanceKm float64,
	estimatedTimeHours float64,
	basePrice float64,
	pricePerKg float64,
) (*Route, error) {
	route := &Route{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		route.setID(id),
		route.setEndpoints(originID, destinationID),
		route.setDistanceKm(distanceKm),
		route.setEstimatedTimeHours(estimatedTimeHours),
		route.setBasePrice(basePrice),
		route.setPricePerKg(pricePerKg),
	); err != nil {
		return nil, err
	}

	return route, nil
}

// RestoreRoute reconstructs a Route from persistent storage.
func RestoreRoute(
	id kernel.UUID,
	originID kernel.UUID,
	destinationID kernel.UUID,
	distanceKm float64,
	estimatedTimeHours float64,
	basePrice float64,
	pricePerKg float64,
	active bool,
) (*Route, error) {
	route, err := NewRoute(id, originID, destinationID, distanceKm, estimatedTimeHours, basePrice, pricePerKg)
	if err != nil {
		return nil, err
	}

	route.active = active
	return route, nil
}

// Validate ensures the Route instance was properly constructed.
func (r *Route) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRouteIsNotConstructed
	}
	return nil
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID { return r.id }

// OriginID returns the origin location id.
func (r *Route) OriginID() kernel.UUID { return r.originID }

// DestinationID returns the destination location id.
func (r *Route) DestinationID() kernel.UUID { return r.destinationID }

// DistanceKm returns the lane distance in kilometers.
func (r *Route) DistanceKm() float64 { return r.distanceKm }

// EstimatedTimeHours returns the estimated transit time in hours.
func (r *Route) EstimatedTimeHours() float64 { return r.estimatedTimeHours }

// BasePrice returns the fixed component of the quote.
func (r *Route) BasePrice() float64 { return r.basePrice }

// PricePerKg returns the per-kilogram component of the quote.
func (r *Route) PricePerKg() float64 { return r.pricePerKg }

// IsActive reports whether new orders may be priced against this route.
func (r *Route) IsActive() bool { return r.active }

// Deactivate hides the route from new orders. Orders already priced against
// it keep their frozen quotes.
func (r *Route) Deactivate() {
	r.active = false
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setEndpoints(originID, destinationID kernel.UUID) error {
	if err := originID.Validate(); err != nil {
		return err
	}
	if err := destinationID.Validate(); err != nil {
		return err
	}
	if originID.IsEqual(destinationID) {
		return errs.NewValueIsInvalidErrorWithCause("destination is invalid",
			fmt.Errorf("origin and destination must differ"))
	}

	r.originID = originID
	r.destinationID = destinationID
	return nil
}

func (r *Route) setDistanceKm(distanceKm float64) error {
	if distanceKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance is invalid",
			fmt.Errorf("%v is not greater than 0", distanceKm))
	}
	r.distanceKm = distanceKm
	return nil
}

func (r *Route) setEstimatedTimeHours(hours float64) error {
	if hours <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimated time is invalid",
			fmt.Errorf("%v is not greater than 0", hours))
	}
	r.estimatedTimeHours = hours
	return nil
}

func (r *Route) setBasePrice(basePrice float64) error {
	if basePrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("base price is invalid",
			fmt.Errorf("%v is negative", basePrice))
	}
	r.basePrice = basePrice
	return nil
}

func (r *Route) setPricePerKg(pricePerKg float64) error {
	if pricePerKg < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price per kg is invalid",
			fmt.Errorf("%v is negative", pricePerKg))
	}
	r.pricePerKg = pricePerKg
	return nil
}

package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrListActiveRoutesQueryIsNotConstructed = errors.New(
	"ListActiveRoutesQuery must be created via NewListActiveRoutesQuery constructor",
)

// ListActiveRoutesQuery retrieves the routes currently open for new orders,
// cheapest base price first. This is what a client browses when posting.
type ListActiveRoutesQuery struct {
	guard guard.ConstructorGuard
}

// NewListActiveRoutesQuery creates a query for the active route catalog.
func NewListActiveRoutesQuery() ListActiveRoutesQuery {
	return ListActiveRoutesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListActiveRoutesQuery) Validate() error {
	return q.guard.Validate(ErrListActiveRoutesQueryIsNotConstructed)
}

// RouteResponse is the route catalog read model.
type RouteResponse struct {
	ID                 kernel.UUID
	OriginID           kernel.UUID
	DestinationID      kernel.UUID
	DistanceKm         float64
	EstimatedTimeHours float64
	BasePrice          float64
	PricePerKg         float64
	Active             bool
}

package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/route"
)

// RouteRepository is the route catalog contract: the read side feeds order
// creation (only active routes may be quoted against), the write side serves
// the administrative catalog editor.
type RouteRepository interface {
	// Add persists a new route to the catalog.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists changes to an existing route (deactivation).
	Update(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such route exists.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)

	// GetAllActive retrieves routes available for new orders,
	// cheapest base price first.
	GetAllActive(ctx context.Context) ([]*route.Route, error)
}

package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/location"
)

// LocationRepository is the location directory contract.
type LocationRepository interface {
	// Add persists a new location to the directory.
	Add(ctx context.Context, aggregate *location.Location) error

	// Update persists changes to an existing location (deactivation).
	Update(ctx context.Context, aggregate *location.Location) error

	// Get retrieves a location by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such location exists.
	Get(ctx context.Context, id kernel.UUID) (*location.Location, error)

	// GetAll retrieves every location, active and inactive, by name.
	GetAll(ctx context.Context) ([]*location.Location, error)
}

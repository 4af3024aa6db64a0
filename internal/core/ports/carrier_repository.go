package ports

import (
	"context"

	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"
)

// CarrierRepository defines the persistence contract for carrier aggregates.
// Each user identity owns at most one carrier record.
type CarrierRepository interface {
	// Add persists a new carrier registration.
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	// Update persists changes to an existing carrier.
	Update(ctx context.Context, aggregate *carrier.Carrier) error

	// Get retrieves a carrier by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such carrier exists.
	Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)

	// GetByUserID retrieves the carrier owned by the given user identity.
	// Returns errs.ObjectNotFoundError when the user has no carrier record.
	GetByUserID(ctx context.Context, userID kernel.UUID) (*carrier.Carrier, error)
}

package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListLocationsQueryHandler reads the location directory.
type ListLocationsQueryHandler struct {
	db *gorm.DB
}

// NewListLocationsQueryHandler creates a handler for location directory queries.
func NewListLocationsQueryHandler(db *gorm.DB) ListLocationsQueryHandler {
	return ListLocationsQueryHandler{db: db}
}

// Handle returns every location, active and inactive, sorted by name.
func (h ListLocationsQueryHandler) Handle(
	ctx context.Context,
	query ListLocationsQuery,
) ([]LocationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	locations := make([]LocationResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			city,
			state,
			zip_code,
			active
		FROM locations
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp LocationResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Address,
			&resp.City,
			&resp.State,
			&resp.ZipCode,
			&resp.Active,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		locations = append(locations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return locations, nil
}

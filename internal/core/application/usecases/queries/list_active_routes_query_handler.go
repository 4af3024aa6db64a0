package queries

import (
	"context"

	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListActiveRoutesQueryHandler reads the active route catalog.
type ListActiveRoutesQueryHandler struct {
	db *gorm.DB
}

// NewListActiveRoutesQueryHandler creates a handler for route catalog queries.
func NewListActiveRoutesQueryHandler(db *gorm.DB) ListActiveRoutesQueryHandler {
	return ListActiveRoutesQueryHandler{db: db}
}

// Handle returns active routes, cheapest base price first.
func (h ListActiveRoutesQueryHandler) Handle(
	ctx context.Context,
	query ListActiveRoutesQuery,
) ([]RouteResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	routes := make([]RouteResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			origin_id,
			destination_id,
			distance_km,
			estimated_time_hours,
			base_price,
			price_per_kg,
			active
		FROM routes
		WHERE active
		ORDER BY base_price
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp RouteResponse
		var id, originID, destinationID uuid.UUID

		err = rows.Scan(
			&id,
			&originID,
			&destinationID,
			&resp.DistanceKm,
			&resp.EstimatedTimeHours,
			&resp.BasePrice,
			&resp.PricePerKg,
			&resp.Active,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OriginID, err = kernel.UUIDFromBytes(originID[:]); err != nil {
			return nil, err
		}
		if resp.DestinationID, err = kernel.UUIDFromBytes(destinationID[:]); err != nil {
			return nil, err
		}

		routes = append(routes, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return routes, nil
}

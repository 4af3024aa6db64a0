// Package routerepo provides data transfer objects and mapping functions
// for route catalog persistence.
package routerepo

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting route aggregates.
type RouteDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	OriginID           uuid.UUID `gorm:"type:uuid"`
	DestinationID      uuid.UUID `gorm:"type:uuid"`
	DistanceKm         float64   `gorm:"type:numeric"`
	EstimatedTimeHours float64   `gorm:"type:numeric"`
	BasePrice          float64   `gorm:"type:numeric"`
	PricePerKg         float64   `gorm:"type:numeric"`
	Active             bool      `gorm:"index"`
}

// TableName specifies the database table name for route entities.
func (RouteDTO) TableName() string {
	return "routes"
}

func fromDomain(aggregate *route.Route) RouteDTO {
	return RouteDTO{
		ID:                 aggregate.ID().Bytes(),
		OriginID:           aggregate.OriginID().Bytes(),
		DestinationID:      aggregate.DestinationID().Bytes(),
		DistanceKm:         aggregate.DistanceKm(),
		EstimatedTimeHours: aggregate.EstimatedTimeHours(),
		BasePrice:          aggregate.BasePrice(),
		PricePerKg:         aggregate.PricePerKg(),
		Active:             aggregate.IsActive(),
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	originID, err := kernel.UUIDFromBytes(dto.OriginID[:])
	if err != nil {
		return nil, err
	}
	destinationID, err := kernel.UUIDFromBytes(dto.DestinationID[:])
	if err != nil {
		return nil, err
	}

	return route.RestoreRoute(
		id,
		originID,
		destinationID,
		dto.DistanceKm,
		dto.EstimatedTimeHours,
		dto.BasePrice,
		dto.PricePerKg,
		dto.Active,
	)
}

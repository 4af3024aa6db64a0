// Package locationrepo provides data transfer objects and mapping functions
// for location directory persistence.
package locationrepo

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/location"

	"github.com/google/uuid"
)

// LocationDTO represents the database structure for persisting location
// entities.
type LocationDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(128)"`
	Address string    `gorm:"type:text"`
	City    string    `gorm:"type:varchar(64)"`
	State   string    `gorm:"type:varchar(32)"`
	ZipCode string    `gorm:"type:varchar(16)"`
	Active  bool
}

// TableName specifies the database table name for location entities.
func (LocationDTO) TableName() string {
	return "locations"
}

func fromDomain(aggregate *location.Location) LocationDTO {
	return LocationDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Address: aggregate.Address(),
		City:    aggregate.City(),
		State:   aggregate.State(),
		ZipCode: aggregate.ZipCode(),
		Active:  aggregate.IsActive(),
	}
}

func toDomain(dto LocationDTO) (*location.Location, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return location.RestoreLocation(
		id,
		dto.Name,
		dto.Address,
		dto.City,
		dto.State,
		dto.ZipCode,
		dto.Active,
	)
}

// Package carrierrepo provides data transfer objects and mapping functions
// for carrier persistence.
package carrierrepo

import (
	"freight/internal/core/domain/model/carrier"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CarrierDTO represents the database structure for persisting carrier
// aggregates. The user id carries a unique index: one carrier per user.
type CarrierDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	VehicleType   string    `gorm:"type:varchar(64)"`
	VehiclePlate  string    `gorm:"type:varchar(16)"`
	DriverLicense string    `gorm:"type:varchar(32)"`
	Rating        float64   `gorm:"type:numeric"`
	Active        bool
}

// TableName specifies the database table name for carrier entities.
func (CarrierDTO) TableName() string {
	return "carriers"
}

func fromDomain(aggregate *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:            aggregate.ID().Bytes(),
		UserID:        aggregate.UserID().Bytes(),
		VehicleType:   aggregate.VehicleType(),
		VehiclePlate:  aggregate.VehiclePlate(),
		DriverLicense: aggregate.DriverLicense(),
		Rating:        aggregate.Rating(),
		Active:        aggregate.IsActive(),
	}
}

func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(
		id,
		userID,
		dto.VehicleType,
		dto.VehiclePlate,
		dto.DriverLicense,
		dto.Rating,
		dto.Active,
	)
}

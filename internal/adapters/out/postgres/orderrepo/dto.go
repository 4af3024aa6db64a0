// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Indexed by status and carrier assignment to serve the marketplace board and
// per-party history queries.
type OrderDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID           uuid.UUID  `gorm:"type:uuid;index"`
	RouteID            uuid.UUID  `gorm:"type:uuid"`
	PickupLocationID   uuid.UUID  `gorm:"type:uuid"`
	DeliveryLocationID uuid.UUID  `gorm:"type:uuid"`
	ProductDescription string     `gorm:"type:text"`
	WeightKg           float64    `gorm:"type:numeric"`
	TotalPrice         float64    `gorm:"type:numeric"`
	Notes              string     `gorm:"type:text"`
	Status             string     `gorm:"type:varchar(16);index"`
	CarrierID          *uuid.UUID `gorm:"type:uuid;index"`
	PickupDate         *time.Time
	DeliveryDate       *time.Time
	CreatedAt          time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Status is stored as its lowercase name so rows stay readable and match the
// wire format.
func fromDomain(aggregate *order.Order) OrderDTO {
	var carrierID *uuid.UUID
	if id := aggregate.Carrier(); id != nil {
		raw := id.Bytes()
		carrierID = &raw
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		ClientID:           aggregate.ClientID().Bytes(),
		RouteID:            aggregate.RouteID().Bytes(),
		PickupLocationID:   aggregate.PickupLocationID().Bytes(),
		DeliveryLocationID: aggregate.DeliveryLocationID().Bytes(),
		ProductDescription: aggregate.ProductDescription(),
		WeightKg:           aggregate.WeightKg(),
		TotalPrice:         aggregate.TotalPrice(),
		Notes:              aggregate.Notes(),
		Status:             aggregate.Status().String(),
		CarrierID:          carrierID,
		PickupDate:         aggregate.PickupDate(),
		DeliveryDate:       aggregate.DeliveryDate(),
		CreatedAt:          aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which re-checks the status/carrier/date invariants.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	routeID, err := kernel.UUIDFromBytes(dto.RouteID[:])
	if err != nil {
		return nil, err
	}
	pickupLocationID, err := kernel.UUIDFromBytes(dto.PickupLocationID[:])
	if err != nil {
		return nil, err
	}
	deliveryLocationID, err := kernel.UUIDFromBytes(dto.DeliveryLocationID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var carrierID *kernel.UUID
	if dto.CarrierID != nil {
		cID, carrierErr := kernel.UUIDFromBytes((*dto.CarrierID)[:])
		if carrierErr != nil {
			return nil, carrierErr
		}

		carrierID = &cID
	}

	return order.RestoreOrder(
		id,
		clientID,
		routeID,
		pickupLocationID,
		deliveryLocationID,
		dto.ProductDescription,
		dto.WeightKg,
		dto.TotalPrice,
		dto.Notes,
		status,
		carrierID,
		dto.PickupDate,
		dto.DeliveryDate,
		dto.CreatedAt,
	)
}

// Package carrier contains the Carrier aggregate: an independent transporter
// registered by a user with the carrier role. Each user identity owns at most
// one carrier record, and only that identity may change it.
package carrier

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

const (
	// ratingMin and ratingMax bound the carrier rating scale.
	ratingMin = 0.0
	ratingMax = 5.0

	// defaultRating is assigned at registration, before any deliveries.
	defaultRating = 5.0
)

// ErrCarrierIsNotConstructed is returned when a Carrier instance was not
// created through NewCarrier or RestoreCarrier.
var ErrCarrierIsNotConstructed = errors.New("Carrier must be created via NewCarrier or RestoreCarrier")

// Carrier is a registered transporter competing for pending orders.
type Carrier struct {
	id            kernel.UUID
	userID        kernel.UUID
	vehicleType   string
	vehiclePlate  string
	driverLicense string
	rating        float64
	active        bool

	isConstructed bool
}

// NewCarrier registers an active Carrier for a user identity. Vehicle type and
// plate are required, the driver license is optional, and the rating starts at
// the default.
func NewCarrier(id, userID kernel.UUID, vehicleType, vehiclePlate, driverLicense string) (*Carrier, error) {
	carrier := &Carrier{
		driverLicense: driverLicense,
		rating:        defaultRating,
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		carrier.setID(id),
		carrier.setUserID(userID),
		carrier.setVehicleType(vehicleType),
		carrier.setVehiclePlate(vehiclePlate),
	); err != nil {
		return nil, err
	}

	return carrier, nil
}

// RestoreCarrier reconstructs a Carrier from persistent storage.
func RestoreCarrier(
	id, userID kernel.UUID,
	vehicleType, vehiclePlate, driverLicense string,
	rating float64,
	active bool,
) (*Carrier, error) {
	carrier, err := NewCarrier(id, userID, vehicleType, vehiclePlate, driverLicense)
	if err != nil {
		return nil, err
	}
	if err = carrier.SetRating(rating); err != nil {
		return nil, err
	}

	carrier.active = active
	return carrier, nil
}

// Validate ensures the Carrier instance was properly constructed.
func (c *Carrier) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCarrierIsNotConstructed
	}
	return nil
}

// ID returns the carrier's unique identifier.
func (c *Carrier) ID() kernel.UUID { return c.id }

// UserID returns the owning user identity.
func (c *Carrier) UserID() kernel.UUID { return c.userID }

// VehicleType returns the carrier's vehicle category.
func (c *Carrier) VehicleType() string { return c.vehicleType }

// VehiclePlate returns the vehicle's license plate.
func (c *Carrier) VehiclePlate() string { return c.vehiclePlate }

// DriverLicense returns the optional driver license number.
func (c *Carrier) DriverLicense() string { return c.driverLicense }

// Rating returns the carrier's rating on the 0-5 scale.
func (c *Carrier) Rating() float64 { return c.rating }

// IsActive reports whether the carrier may claim new orders.
func (c *Carrier) IsActive() bool { return c.active }

// SetRating updates the rating, rejecting values outside the 0-5 scale.
func (c *Carrier) SetRating(rating float64) error {
	if rating < ratingMin || rating > ratingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, ratingMin, ratingMax)
	}
	c.rating = rating
	return nil
}

// Deactivate removes the carrier from the marketplace. Orders it already
// holds are unaffected.
func (c *Carrier) Deactivate() {
	c.active = false
}

func (c *Carrier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Carrier) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *Carrier) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicle type")
	}
	c.vehicleType = vehicleType
	return nil
}

func (c *Carrier) setVehiclePlate(vehiclePlate string) error {
	if vehiclePlate == "" {
		return errs.NewValueIsRequiredError("vehicle plate")
	}
	c.vehiclePlate = vehiclePlate
	return nil
}

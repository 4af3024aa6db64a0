package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrRegisterCarrierCommandIsNotConstructed = errors.New(
		"RegisterCarrierCommand must be created via NewRegisterCarrierCommand constructor",
	)
	ErrVehicleTypeIsRequired  = errs.NewValueIsRequiredError("vehicle type")
	ErrVehiclePlateIsRequired = errs.NewValueIsRequiredError("vehicle plate")
)

// RegisterCarrierCommand represents a user with the carrier role registering
// their vehicle to compete for orders. Driver license is optional.
type RegisterCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID     kernel.UUID
	userID        kernel.UUID
	vehicleType   string
	vehiclePlate  string
	driverLicense string

	guard guard.ConstructorGuard
}

// NewRegisterCarrierCommand creates a carrier registration command.
func NewRegisterCarrierCommand(
	carrierID, userID kernel.UUID,
	vehicleType, vehiclePlate, driverLicense string,
) (RegisterCarrierCommand, error) {
	cmd := RegisterCarrierCommand{
		driverLicense: driverLicense,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCarrierID(carrierID),
		cmd.setUserID(userID),
		cmd.setVehicleType(vehicleType),
		cmd.setVehiclePlate(vehiclePlate),
	); err != nil {
		return RegisterCarrierCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterCarrierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCarrierCommandIsNotConstructed)
}

// CarrierID returns the identifier assigned to the new carrier record.
func (c RegisterCarrierCommand) CarrierID() kernel.UUID { return c.carrierID }

// UserID returns the owning user identity.
func (c RegisterCarrierCommand) UserID() kernel.UUID { return c.userID }

// VehicleType returns the vehicle category.
func (c RegisterCarrierCommand) VehicleType() string { return c.vehicleType }

// VehiclePlate returns the vehicle's license plate.
func (c RegisterCarrierCommand) VehiclePlate() string { return c.vehiclePlate }

// DriverLicense returns the optional driver license number.
func (c RegisterCarrierCommand) DriverLicense() string { return c.driverLicense }

func (c *RegisterCarrierCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}
	c.carrierID = carrierID
	return nil
}

func (c *RegisterCarrierCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *RegisterCarrierCommand) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return ErrVehicleTypeIsRequired
	}
	c.vehicleType = vehicleType
	return nil
}

func (c *RegisterCarrierCommand) setVehiclePlate(vehiclePlate string) error {
	if vehiclePlate == "" {
		return ErrVehiclePlateIsRequired
	}
	c.vehiclePlate = vehiclePlate
	return nil
}

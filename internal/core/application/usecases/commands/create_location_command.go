package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

// ErrCreateLocationCommandIsNotConstructed is returned when the command was
// not created via the constructor.
var ErrCreateLocationCommandIsNotConstructed = errors.New(
	"CreateLocationCommand must be created via NewCreateLocationCommand constructor",
)

// CreateLocationCommand adds a named pickup/delivery point to the directory.
type CreateLocationCommand struct { //nolint:recvcheck //using for validation
	locationID kernel.UUID
	name       string
	address    string
	city       string
	state      string
	zipCode    string

	guard guard.ConstructorGuard
}

// NewCreateLocationCommand creates a location creation command. Required field
// validation happens in the location aggregate on Handle.
func NewCreateLocationCommand(
	locationID kernel.UUID,
	name, address, city, state, zipCode string,
) (CreateLocationCommand, error) {
	if err := locationID.Validate(); err != nil {
		return CreateLocationCommand{}, err
	}

	return CreateLocationCommand{
		locationID: locationID,
		name:       name,
		address:    address,
		city:       city,
		state:      state,
		zipCode:    zipCode,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateLocationCommand) Validate() error {
	return c.guard.Validate(ErrCreateLocationCommandIsNotConstructed)
}

// LocationID returns the identifier assigned to the new location.
func (c CreateLocationCommand) LocationID() kernel.UUID { return c.locationID }

// Name returns the display name of the location.
func (c CreateLocationCommand) Name() string { return c.name }

// Address returns the street address.
func (c CreateLocationCommand) Address() string { return c.address }

// City returns the city.
func (c CreateLocationCommand) City() string { return c.city }

// State returns the state or region.
func (c CreateLocationCommand) State() string { return c.state }

// ZipCode returns the optional postal code.
func (c CreateLocationCommand) ZipCode() string { return c.zipCode }

// Package location contains the Location entity of the location directory.
// Locations are immutable once referenced by a route or order, except for the
// active flag.
package location

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// ErrLocationIsNotConstructed is returned when a Location instance was not
// created through NewLocation or RestoreLocation.
var ErrLocationIsNotConstructed = errors.New("Location must be created via NewLocation or RestoreLocation")

// Location is a named address that routes connect and orders reference as
// pickup or delivery points.
type Location struct {
	id      kernel.UUID
	name    string
	address string
	city    string
	state   string
	zipCode string
	active  bool

	isConstructed bool
}

// NewLocation creates an active Location. Zip code is optional; all other
// fields are required.
func NewLocation(id kernel.UUID, name, address, city, state, zipCode string) (*Location, error) {
	loc := &Location{
		zipCode:       zipCode,
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		loc.setID(id),
		loc.setName(name),
		loc.setAddress(address),
		loc.setCity(city),
		loc.setState(state),
	); err != nil {
		return nil, err
	}

	return loc, nil
}

// RestoreLocation reconstructs a Location from persistent storage.
func RestoreLocation(id kernel.UUID, name, address, city, state, zipCode string, active bool) (*Location, error) {
	loc, err := NewLocation(id, name, address, city, state, zipCode)
	if err != nil {
		return nil, err
	}

	loc.active = active
	return loc, nil
}

// Validate ensures the Location instance was properly constructed.
func (l *Location) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLocationIsNotConstructed
	}
	return nil
}

// ID returns the location's unique identifier.
func (l *Location) ID() kernel.UUID { return l.id }

// Name returns the location's display name.
func (l *Location) Name() string { return l.name }

// Address returns the street address.
func (l *Location) Address() string { return l.address }

// City returns the city.
func (l *Location) City() string { return l.city }

// State returns the state or region.
func (l *Location) State() string { return l.state }

// ZipCode returns the optional postal code.
func (l *Location) ZipCode() string { return l.zipCode }

// IsActive reports whether the location accepts new references.
func (l *Location) IsActive() bool { return l.active }

// Deactivate hides the location from new routes and orders. Existing
// references are unaffected.
func (l *Location) Deactivate() {
	l.active = false
}

func (l *Location) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Location) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	l.name = name
	return nil
}

func (l *Location) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	l.address = address
	return nil
}

func (l *Location) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	l.city = city
	return nil
}

func (l *Location) setState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	l.state = state
	return nil
}

package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrListLocationsQueryIsNotConstructed = errors.New(
	"ListLocationsQuery must be created via NewListLocationsQuery constructor",
)

// ListLocationsQuery retrieves the location directory, sorted by name.
type ListLocationsQuery struct {
	guard guard.ConstructorGuard
}

// NewListLocationsQuery creates a query for the location directory.
func NewListLocationsQuery() ListLocationsQuery {
	return ListLocationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListLocationsQuery) Validate() error {
	return q.guard.Validate(ErrListLocationsQueryIsNotConstructed)
}

// LocationResponse is the location directory read model.
type LocationResponse struct {
	ID      kernel.UUID
	Name    string
	Address string
	City    string
	State   string
	ZipCode string
	Active  bool
}

package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetCarrierOrdersQueryIsNotConstructed = errors.New(
	"GetCarrierOrdersQuery must be created via NewGetCarrierOrdersQuery constructor",
)

// GetCarrierOrdersQuery retrieves every order assigned to one carrier,
// newest first. This is the carrier's working set: claimed, en route, and
// completed deliveries.
type GetCarrierOrdersQuery struct {
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCarrierOrdersQuery creates a query for a carrier's assigned orders.
func NewGetCarrierOrdersQuery(carrierID kernel.UUID) (GetCarrierOrdersQuery, error) {
	if err := carrierID.Validate(); err != nil {
		return GetCarrierOrdersQuery{}, err
	}

	return GetCarrierOrdersQuery{
		carrierID: carrierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCarrierOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCarrierOrdersQueryIsNotConstructed)
}

// CarrierID returns the carrier whose assigned orders are requested.
func (q GetCarrierOrdersQuery) CarrierID() kernel.UUID {
	return q.carrierID
}

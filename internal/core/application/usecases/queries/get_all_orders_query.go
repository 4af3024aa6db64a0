package queries

import (
	"errors"

	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery is the administrative view over every order, optionally
// narrowed to one status.
type GetAllOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates an unfiltered query over all orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetAllOrdersQueryWithStatus creates a query narrowed to one status.
func NewGetAllOrdersQueryWithStatus(status order.Status) (GetAllOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return GetAllOrdersQuery{}, err
	}

	return GetAllOrdersQuery{
		status: &status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// Status returns the status filter, or nil when the query is unfiltered.
func (q GetAllOrdersQuery) Status() *order.Status {
	return q.status
}

// Package ports defines repository and unit-of-work interfaces for the
// marketplace core. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// UpdateIf is the only write primitive used after creation: every status
// change goes through it, so the guard condition travels with the write and
// concurrent callers can never both pass a stale check.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateIf applies change to the stored order only if expected still
	// holds against the current row at the instant of write, and reports
	// whether the update was applied. The check and the write execute as a
	// single atomic compare-and-set statement against the store; a false
	// return leaves the row untouched.
	UpdateIf(ctx context.Context, id kernel.UUID, expected order.Expectation, change order.Change) (bool, error)
}

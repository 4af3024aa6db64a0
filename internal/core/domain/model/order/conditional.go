package order

import (
	"time"

	"freight/internal/core/domain/model/kernel"
)

// Expectation is the guard condition of a conditional update: the stored row
// must still match every set field at the instant of write, or the update is
// not applied. Embedding the guard in the write itself is what makes claims
// and transitions race-safe; the store never checks state in one step and
// writes in another.
type Expectation struct {
	// Status the stored order must currently be in.
	Status Status

	// CarrierIsNull requires that no carrier is assigned yet.
	CarrierIsNull bool

	// CarrierID, when set, requires this exact carrier to be assigned.
	CarrierID *kernel.UUID
}

// Change is the mutation applied by a conditional update when its Expectation
// still holds. Nil pointer fields are left untouched.
type Change struct {
	// Status the order moves to.
	Status Status

	// CarrierID assigns a carrier (claim only).
	CarrierID *kernel.UUID

	// PickupDate is recorded on accepted -> in_transit.
	PickupDate *time.Time

	// DeliveryDate is recorded on in_transit -> delivered.
	DeliveryDate *time.Time
}

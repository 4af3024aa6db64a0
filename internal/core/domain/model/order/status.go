package order

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned when a requested status change is not an
// edge of the order lifecycle state machine.
var ErrInvalidTransition = errors.New("invalid status transition")

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	Pending ──> Accepted ──> InTransit ──> Delivered
//	   │
//	   └──────> Cancelled
//
// Delivered and Cancelled are terminal; no transitions leave them. There is
// no cancellation path once a carrier holds the order.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is first created.
	// Orders in this status are waiting to be claimed by a carrier.
	StatusPending

	// StatusAccepted indicates exactly one carrier has claimed the order.
	StatusAccepted

	// StatusInTransit indicates the assigned carrier has picked up the cargo.
	StatusInTransit

	// StatusDelivered indicates the cargo reached its destination. Terminal.
	StatusDelivered

	// StatusCancelled indicates the owning client withdrew the order while
	// it was still pending. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusPending:   "pending",
		StatusAccepted:  "accepted",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "pending",
		StatusAccepted:  "accepted",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// StatusFromString parses a status name as it appears on the wire and in the
// database ("pending", "accepted", "in_transit", "delivered", "cancelled").
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, fmt.Errorf("%q is not a valid status", s)
}

// Validate checks that the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return fmt.Errorf("%d is not a valid status", s)
	}
	return nil
}

// String returns the lowercase status name.
// It implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions leave this status.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ValidateCanHaveCarrier validates the consistency between order status and
// carrier assignment: a carrier is present exactly while the order is
// accepted, in transit, or delivered.
func (s Status) ValidateCanHaveCarrier(carrier bool) error {
	assigned := s == StatusAccepted || s == StatusInTransit || s == StatusDelivered

	if carrier && !assigned {
		return fmt.Errorf("%s is not a valid status to have a carrier", s)
	}
	if !carrier && assigned {
		return fmt.Errorf("%s is not a valid status to have no carrier", s)
	}

	return nil
}

// Accept transitions the status to StatusAccepted.
// Only StatusPending orders can be accepted; this edge belongs exclusively to
// the claim flow, which also assigns the carrier.
func (s Status) Accept() (Status, error) {
	if s != StatusPending {
		return 0, newInvalidTransitionError(s, StatusAccepted)
	}
	return StatusAccepted, nil
}

// StartTransit transitions the status to StatusInTransit.
// Only StatusAccepted orders can start transit.
func (s Status) StartTransit() (Status, error) {
	if s != StatusAccepted {
		return 0, newInvalidTransitionError(s, StatusInTransit)
	}
	return StatusInTransit, nil
}

// Deliver transitions the status to StatusDelivered.
// Only StatusInTransit orders can be delivered.
func (s Status) Deliver() (Status, error) {
	if s != StatusInTransit {
		return 0, newInvalidTransitionError(s, StatusDelivered)
	}
	return StatusDelivered, nil
}

// Cancel transitions the status to StatusCancelled.
// Only StatusPending orders can be cancelled; once a carrier holds the order
// there is no cancellation path.
func (s Status) Cancel() (Status, error) {
	if s != StatusPending {
		return 0, newInvalidTransitionError(s, StatusCancelled)
	}
	return StatusCancelled, nil
}

func newInvalidTransitionError(from, to Status) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}

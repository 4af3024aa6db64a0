package order

import (
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrCarrierAlreadyAssigned is returned when claiming an order that
	// already has a carrier. Once assigned, the carrier never changes.
	ErrCarrierAlreadyAssigned = errors.New("order already has an assigned carrier")
)

// Order is a client's shipment request, priced against a route and tracked
// through a status lifecycle. It is the aggregate root of the marketplace core.
//
// Invariants held at all times:
//   - weight is positive and the total price is frozen at creation
//   - a carrier is assigned exactly while status is accepted, in_transit, or delivered
//   - pickup date is set exactly while status is in_transit or delivered
//   - delivery date is set exactly while status is delivered
//   - pickup and delivery locations differ
//   - once assigned, the carrier never changes
//
// Orders are never deleted; cancellation and delivery are terminal states.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// clientID is the owning client's user identity
	clientID kernel.UUID

	// routeID references the priced route the order was quoted against
	routeID kernel.UUID

	// pickupLocationID and deliveryLocationID are copied from the route at
	// creation time and immutable thereafter
	pickupLocationID   kernel.UUID
	deliveryLocationID kernel.UUID

	// productDescription describes the cargo
	productDescription string

	// weightKg is the cargo weight (must be positive)
	weightKg float64

	// totalPrice is the quoted price, frozen at creation, never recomputed
	totalPrice float64

	// notes is optional free text from the client
	notes string

	// status represents the current state in the order lifecycle
	status Status

	// carrierID is the assigned carrier's user identity (nil while unclaimed)
	carrierID *kernel.UUID

	// pickupDate is set when the carrier starts transit
	pickupDate *time.Time

	// deliveryDate is set when the carrier completes delivery
	deliveryDate *time.Time

	// createdAt orders history views, newest first
	createdAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a pending Order with no carrier. The total price must be
// the quote produced by the pricing calculator; the aggregate freezes it and
// never recomputes it, even if the route's prices later change.
//
// Validation failures are aggregated so the caller sees every broken rule at once.
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	routeID kernel.UUID,
	pickupLocationID kernel.UUID,
	deliveryLocationID kernel.UUID,
	productDescription string,
	weightKg float64,
	totalPrice float64,
	notes string,
) (*Order, error) {
	order := &Order{
		status:        StatusPending,
		notes:         notes,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setRouteID(routeID),
		order.setLocations(pickupLocationID, deliveryLocationID),
		order.setProductDescription(productDescription),
		order.setWeightKg(weightKg),
		order.setTotalPrice(totalPrice),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistent storage, including its
// status, carrier assignment, and lifecycle dates. The restored aggregate is
// re-checked against the status/carrier/date consistency invariants so a
// corrupted row never becomes a live aggregate.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	routeID kernel.UUID,
	pickupLocationID kernel.UUID,
	deliveryLocationID kernel.UUID,
	productDescription string,
	weightKg float64,
	totalPrice float64,
	notes string,
	status Status,
	carrierID *kernel.UUID,
	pickupDate *time.Time,
	deliveryDate *time.Time,
	createdAt time.Time,
) (*Order, error) {
	order, err := NewOrder(
		id, clientID, routeID, pickupLocationID, deliveryLocationID,
		productDescription, weightKg, totalPrice, notes,
	)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("status is invalid", err)
	}
	if err = status.ValidateCanHaveCarrier(carrierID != nil); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("carrier assignment is invalid", err)
	}
	if err = validateLifecycleDates(status, pickupDate, deliveryDate); err != nil {
		return nil, err
	}
	if carrierID != nil {
		if err = carrierID.Validate(); err != nil {
			return nil, err
		}
	}

	order.status = status
	order.carrierID = carrierID
	order.pickupDate = pickupDate
	order.deliveryDate = deliveryDate
	order.createdAt = createdAt
	return order, nil
}

// validateLifecycleDates enforces: pickup date iff in_transit or delivered,
// delivery date iff delivered.
func validateLifecycleDates(status Status, pickupDate, deliveryDate *time.Time) error {
	wantPickup := status == StatusInTransit || status == StatusDelivered
	wantDelivery := status == StatusDelivered

	if (pickupDate != nil) != wantPickup {
		return errs.NewValueIsInvalidErrorWithCause("pickup date is invalid",
			fmt.Errorf("pickup date presence does not match status %s", status))
	}
	if (deliveryDate != nil) != wantDelivery {
		return errs.NewValueIsInvalidErrorWithCause("delivery date is invalid",
			fmt.Errorf("delivery date presence does not match status %s", status))
	}
	return nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the owning client's user identity.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// RouteID returns the route the order was quoted against.
func (o *Order) RouteID() kernel.UUID {
	return o.routeID
}

// PickupLocationID returns the origin location copied from the route at creation.
func (o *Order) PickupLocationID() kernel.UUID {
	return o.pickupLocationID
}

// DeliveryLocationID returns the destination location copied from the route at creation.
func (o *Order) DeliveryLocationID() kernel.UUID {
	return o.deliveryLocationID
}

// ProductDescription returns the cargo description.
func (o *Order) ProductDescription() string {
	return o.productDescription
}

// WeightKg returns the cargo weight in kilograms.
func (o *Order) WeightKg() float64 {
	return o.weightKg
}

// TotalPrice returns the price quoted at creation.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// Notes returns the client's optional notes.
func (o *Order) Notes() string {
	return o.notes
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Carrier returns the assigned carrier's user identity, or nil while unclaimed.
func (o *Order) Carrier() *kernel.UUID {
	return o.carrierID
}

// PickupDate returns when transit started, or nil.
func (o *Order) PickupDate() *time.Time {
	return o.pickupDate
}

// DeliveryDate returns when delivery completed, or nil.
func (o *Order) DeliveryDate() *time.Time {
	return o.deliveryDate
}

// CreatedAt returns the order's creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Claim assigns the order to a carrier and moves it to accepted.
// Only pending orders with no carrier can be claimed, and a claimed order
// never changes hands. Against the store this rule is enforced atomically by
// the conditional update; this method expresses the same rule on the aggregate.
func (o *Order) Claim(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}
	if o.carrierID != nil {
		return ErrCarrierAlreadyAssigned
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.carrierID = &carrierID
	return nil
}

// StartTransit moves an accepted order to in_transit and records the pickup date.
func (o *Order) StartTransit(at time.Time) error {
	newStatus, err := o.status.StartTransit()
	if err != nil {
		return err
	}

	o.status = newStatus
	at = at.UTC()
	o.pickupDate = &at
	return nil
}

// Deliver moves an in-transit order to delivered and records the delivery date.
func (o *Order) Deliver(at time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	at = at.UTC()
	o.deliveryDate = &at
	return nil
}

// Cancel moves a pending order to cancelled.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	o.routeID = routeID
	return nil
}

func (o *Order) setLocations(pickupID, deliveryID kernel.UUID) error {
	if err := pickupID.Validate(); err != nil {
		return err
	}
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	if pickupID.IsEqual(deliveryID) {
		return errs.NewValueIsInvalidErrorWithCause("delivery location is invalid",
			fmt.Errorf("pickup and delivery locations must differ"))
	}

	o.pickupLocationID = pickupID
	o.deliveryLocationID = deliveryID
	return nil
}

func (o *Order) setProductDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("product description")
	}
	o.productDescription = description
	return nil
}

func (o *Order) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight is invalid",
			fmt.Errorf("%v is not greater than 0", weightKg))
	}
	o.weightKg = weightKg
	return nil
}

func (o *Order) setTotalPrice(totalPrice float64) error {
	if totalPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total price is invalid",
			fmt.Errorf("%v is negative", totalPrice))
	}
	o.totalPrice = totalPrice
	return nil
}

package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("product description")
	ErrWeightIsInvalid       = errs.NewValueIsInvalidError("weight must be greater than 0")
)

// CreateOrderCommand represents a client's request to post a new shipment
// order against a priced route. The price is quoted by the handler from the
// route's current prices and frozen into the order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(orderID, clientID, routeID, "Industrial pumps", 120.5, "handle with care")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID            kernel.UUID
	clientID           kernel.UUID
	routeID            kernel.UUID
	productDescription string
	weightKg           float64
	notes              string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to post a new order.
// Validates identifiers, requires a description, and rejects non-positive
// weight. Notes are optional.
func NewCreateOrderCommand(
	orderID, clientID, routeID kernel.UUID,
	productDescription string,
	weightKg float64,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
		cmd.setRouteID(routeID),
		cmd.setProductDescription(productDescription),
		cmd.setWeightKg(weightKg),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the posting client's user identity.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// RouteID returns the route the order is quoted against.
func (c CreateOrderCommand) RouteID() kernel.UUID {
	return c.routeID
}

// ProductDescription returns the cargo description.
func (c CreateOrderCommand) ProductDescription() string {
	return c.productDescription
}

// WeightKg returns the cargo weight in kilograms.
func (c CreateOrderCommand) WeightKg() float64 {
	return c.weightKg
}

// Notes returns the client's optional notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}
	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}
	c.routeID = routeID
	return nil
}

func (c *CreateOrderCommand) setProductDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}
	c.productDescription = description
	return nil
}

func (c *CreateOrderCommand) setWeightKg(weightKg float64) error {
	if weightKg <= 0 {
		return ErrWeightIsInvalid
	}
	c.weightKg = weightKg
	return nil
}

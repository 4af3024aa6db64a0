package commands

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/guard"
)

var ErrTransitionOrderCommandIsNotConstructed = errors.New(
	"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
)

// TransitionOrderCommand represents a request to move an order to a target
// status: the assigned carrier marking in_transit or delivered, or the owning
// client cancelling a still-pending order. The acting identity travels with
// the command; the core holds no ambient session.
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   kernel.Actor
	target  order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a transition command. The target must be
// a status reachable through the lifecycle table: in_transit, delivered, or
// cancelled. Accepted is set exclusively by the claim flow and pending is the
// initial state, so neither is a valid target here.
func NewTransitionOrderCommand(orderID kernel.UUID, actor kernel.Actor, target order.Status) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setTarget(target),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order being transitioned.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the acting identity.
func (c TransitionOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// Target returns the requested target status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	switch target {
	case order.StatusInTransit, order.StatusDelivered, order.StatusCancelled:
		c.target = target
		return nil
	case order.StatusUnknown, order.StatusPending, order.StatusAccepted:
	}
	return fmt.Errorf("%w: %s is not a requestable target", order.ErrInvalidTransition, target)
}

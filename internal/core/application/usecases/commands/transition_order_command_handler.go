package commands

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
)

var (
	// ErrPermissionDenied is returned when the edge exists but the acting
	// identity is not the one the lifecycle table allows to take it.
	ErrPermissionDenied = errors.New("actor is not permitted to perform this transition")

	// ErrConflict is returned when the conditional write lost a race: the
	// order changed between the read and the write attempt. Callers should
	// refresh and may retry once.
	ErrConflict = errors.New("order was modified concurrently")
)

// TransitionOrderCommandHandler enforces the order lifecycle table for every
// status change after a claim:
//
//	accepted  -> in_transit  by the assigned carrier (sets pickup date)
//	in_transit -> delivered  by the assigned carrier (sets delivery date)
//	pending   -> cancelled   by the owning client
//
// Edge validity is checked first (InvalidTransition), then the actor
// (PermissionDenied). The write itself re-asserts the source status and
// carrier assignment through the repository's conditional update, so a
// double-submit (a carrier clicking "mark delivered" twice) resolves into one
// applied transition and one ErrConflict instead of a double mutation.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewTransitionOrderCommandHandler creates a handler for status transitions.
func NewTransitionOrderCommandHandler(uowFactory OrderUoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command and returns the order in its new
// state. Failure modes: errs.ObjectNotFoundError for an unknown order,
// order.ErrInvalidTransition for an edge outside the table,
// ErrPermissionDenied for the wrong actor, ErrConflict when the conditional
// write lost a race.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	current, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	expected, change, err := h.plan(current, cmd.Actor(), cmd.Target())
	if err != nil {
		return nil, err
	}

	applied, err := orderRepo.UpdateIf(ctx, cmd.OrderID(), expected, change)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, ErrConflict
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return h.applyToAggregate(current, change)
}

// plan validates the requested edge against the lifecycle table and the
// actor, and produces the expectation/change pair for the conditional write.
func (h TransitionOrderCommandHandler) plan(
	current *order.Order,
	actor kernel.Actor,
	target order.Status,
) (order.Expectation, order.Change, error) {
	var none order.Expectation
	now := time.Now().UTC()

	switch target {
	case order.StatusInTransit:
		if _, err := current.Status().StartTransit(); err != nil {
			return none, order.Change{}, err
		}
		if err := authorizeAssignedCarrier(current, actor); err != nil {
			return none, order.Change{}, err
		}
		return order.Expectation{Status: order.StatusAccepted, CarrierID: current.Carrier()},
			order.Change{Status: order.StatusInTransit, PickupDate: &now}, nil

	case order.StatusDelivered:
		if _, err := current.Status().Deliver(); err != nil {
			return none, order.Change{}, err
		}
		if err := authorizeAssignedCarrier(current, actor); err != nil {
			return none, order.Change{}, err
		}
		return order.Expectation{Status: order.StatusInTransit, CarrierID: current.Carrier()},
			order.Change{Status: order.StatusDelivered, DeliveryDate: &now}, nil

	case order.StatusCancelled:
		if _, err := current.Status().Cancel(); err != nil {
			return none, order.Change{}, err
		}
		if !actor.Is(kernel.RoleClient) || !actor.ID().IsEqual(current.ClientID()) {
			return none, order.Change{}, ErrPermissionDenied
		}
		return order.Expectation{Status: order.StatusPending, CarrierIsNull: true},
			order.Change{Status: order.StatusCancelled}, nil

	case order.StatusUnknown, order.StatusPending, order.StatusAccepted:
	}

	// Unreachable for constructed commands; the command validates its target.
	return none, order.Change{}, order.ErrInvalidTransition
}

// authorizeAssignedCarrier permits only the carrier holding the order.
func authorizeAssignedCarrier(current *order.Order, actor kernel.Actor) error {
	if !actor.Is(kernel.RoleCarrier) || current.Carrier() == nil || !actor.ID().IsEqual(*current.Carrier()) {
		return ErrPermissionDenied
	}
	return nil
}

// applyToAggregate replays the committed change on the loaded aggregate so
// the caller gets the order in its new state, dates matching what was written.
func (h TransitionOrderCommandHandler) applyToAggregate(current *order.Order, change order.Change) (*order.Order, error) {
	switch change.Status {
	case order.StatusInTransit:
		if err := current.StartTransit(*change.PickupDate); err != nil {
			return nil, err
		}
	case order.StatusDelivered:
		if err := current.Deliver(*change.DeliveryDate); err != nil {
			return nil, err
		}
	case order.StatusCancelled:
		if err := current.Cancel(); err != nil {
			return nil, err
		}
	case order.StatusUnknown, order.StatusPending, order.StatusAccepted:
		return nil, order.ErrInvalidTransition
	}
	return current, nil
}

package commands

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/core/domain/model/order"
	"freight/internal/pkg/errs"
)

// ClaimOrderCommandHandler assigns exactly one carrier to a pending order.
//
// The guard condition (still pending, no carrier) is embedded in the
// repository's conditional update, so under N concurrent claim attempts on
// the same order at most one write applies; every other caller observes a
// clean rejection with nothing mutated. No lock or queue is involved.
//
// Example:
//
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case err != nil:
//	    // infrastructure failure or unknown/inactive carrier
//	case result == ClaimResultClaimed:
//	    // this carrier won the order
//	case result == ClaimResultAlreadyClaimed:
//	    // lost the race; re-query the available list
//	}
type ClaimOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewClaimOrderCommandHandler creates a handler for claim operations.
func NewClaimOrderCommandHandler(uowFactory UoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the claim command. The claiming user must own an active
// carrier registration; the claim itself is a single conditional write. A
// false compare-and-set is resolved into AlreadyClaimed or NotFound by
// re-reading the order.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) (ClaimResult, error) {
	if err := cmd.Validate(); err != nil {
		return ClaimResultUnknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ClaimResultUnknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	claimant, err := uow.CarrierRepository().GetByUserID(ctx, cmd.CarrierID())
	if err != nil {
		return ClaimResultUnknown, err
	}
	if !claimant.IsActive() {
		return ClaimResultUnknown, errs.NewValueIsInvalidErrorWithCause("carrier is invalid",
			fmt.Errorf("carrier %s is not active", claimant.ID()))
	}

	carrierID := cmd.CarrierID()
	applied, err := uow.OrderRepository().UpdateIf(ctx,
		cmd.OrderID(),
		order.Expectation{Status: order.StatusPending, CarrierIsNull: true},
		order.Change{Status: order.StatusAccepted, CarrierID: &carrierID},
	)
	if err != nil {
		return ClaimResultUnknown, err
	}

	if !applied {
		// Lost the race or no such order; figure out which without mutating.
		if _, getErr := uow.OrderRepository().Get(ctx, cmd.OrderID()); getErr != nil {
			if errors.Is(getErr, errs.ErrObjectNotFound) {
				return ClaimResultNotFound, nil
			}
			return ClaimResultUnknown, getErr
		}
		return ClaimResultAlreadyClaimed, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return ClaimResultUnknown, err
	}

	return ClaimResultClaimed, nil
}

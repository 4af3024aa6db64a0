package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimResult is the outcome of a claim attempt. Losing the race is an
// expected outcome, not a fault, so it is reported as a value rather than an
// error.
type ClaimResult int

const (
	// ClaimResultUnknown represents an undefined outcome.
	ClaimResultUnknown ClaimResult = iota

	// ClaimResultClaimed means this carrier won the order.
	ClaimResultClaimed

	// ClaimResultAlreadyClaimed means the order exists but is no longer
	// claimable: another carrier holds it or it was cancelled.
	ClaimResultAlreadyClaimed

	// ClaimResultNotFound means no such order exists.
	ClaimResultNotFound
)

// String returns a readable name for logging.
func (r ClaimResult) String() string {
	switch r {
	case ClaimResultClaimed:
		return "claimed"
	case ClaimResultAlreadyClaimed:
		return "already_claimed"
	case ClaimResultNotFound:
		return "not_found"
	case ClaimResultUnknown:
	}
	return "unknown"
}

// ClaimOrderCommand represents a carrier's attempt to become the sole
// assignee of a pending order.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a claim command. The carrier id is the
// claiming user's identity, which must own an active carrier registration.
func NewClaimOrderCommand(orderID, carrierID kernel.UUID) (ClaimOrderCommand, error) {
	cmd := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCarrierID(carrierID),
	); err != nil {
		return ClaimOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderID returns the order being claimed.
func (c ClaimOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CarrierID returns the claiming carrier's user identity.
func (c ClaimOrderCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c *ClaimOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ClaimOrderCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}
	c.carrierID = carrierID
	return nil
}

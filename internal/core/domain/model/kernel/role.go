package kernel

import (
	"fmt"

	"freight/internal/pkg/errs"
)

// Role is the closed set of user roles in the marketplace. Authorization
// points check the role explicitly; there is no promotion or demotion path,
// a profile keeps the role it was created with.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleAdmin manages the route catalog and location directory and can
	// inspect every order.
	RoleAdmin

	// RoleClient posts orders and may cancel their own pending orders.
	RoleClient

	// RoleCarrier claims pending orders and moves them through
	// in_transit and delivered.
	RoleCarrier
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleAdmin:   "admin",
		RoleClient:  "client",
		RoleCarrier: "carrier",
	}
}

// RoleFromString parses a role name ("admin", "client", "carrier").
// Returns an error for unknown names.
func RoleFromString(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != RoleUnknown && name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of the defined values.
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleClient, RoleCarrier:
		return nil
	case RoleUnknown:
	}
	return errs.NewValueIsInvalidErrorWithCause("role is invalid",
		fmt.Errorf("%d is not a valid role", r))
}

// String returns the lowercase role name, or "unknown" for invalid values.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

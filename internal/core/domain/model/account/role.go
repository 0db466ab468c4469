package account

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// Role distinguishes the two kinds of registered accounts.
// Customers place orders; eateries own catalogs and fulfill orders.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer marks an account that places orders.
	RoleCustomer

	// RoleEatery marks an account that owns a menu catalog and fulfills orders.
	RoleEatery
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "Unknown",
		RoleCustomer: "Customer",
		RoleEatery:   "Eatery",
	}
}

func getValidRoleStrings() map[Role]string {
	return map[Role]string{
		RoleCustomer: "Customer",
		RoleEatery:   "Eatery",
	}
}

// Validate checks that the Role is one of the defined valid roles.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
// Implements fmt.Stringer and is safe on any Role value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

package entity

import "slices"

// Role represents the type of role a user can have in the storefront.
type Role string

const (
	// RoleCustomer indicates a regular shopper.
	RoleCustomer Role = "user"
	// RoleAdmin indicates a back-office operator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is the set of roles granted to one user.
type Roles []Role

// Contains reports whether role was granted.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the shop.
type Role string

const (
	// RoleBuyer is the default role of a registered customer.
	RoleBuyer Role = "buyer"
	// RoleSeller may list and manage their own products.
	RoleSeller Role = "seller"
	// RoleAdmin may manage every product, flash sale and user role.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanSelfRegister reports whether a user may pick this role when signing up.
// Admin is only ever granted by another admin.
func (r Role) CanSelfRegister() bool {
	return r == RoleBuyer || r == RoleSeller
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ParseRole converts s to a Role, returning false when it is not one of the known values.
func ParseRole(s string) (Role, bool) {
	role := Role(s)

	return role, role.IsValid()
}

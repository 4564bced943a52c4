package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleUser is assigned to every newly registered identity.
	RoleUser Role = "user"
	// RoleAdmin is granted outside of the auth flows, by an operator.
	RoleAdmin Role = "admin"
)

// DefaultRole is the role stored for new registrations.
const DefaultRole = RoleUser

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

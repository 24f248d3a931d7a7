package printforge

import "strings"

// UserRole is a normalized (uppercase) role as the backend encodes it in
// token claims.
type UserRole string

const (
	// RoleAdmin manages every order and user
	RoleAdmin UserRole = "ADMIN"
	// RoleEmployee processes orders
	RoleEmployee UserRole = "EMPLOYEE"
	// RoleClient submits and tracks their own orders
	RoleClient UserRole = "CLIENT"
	// RoleAnalyst has read-only reporting access
	RoleAnalyst UserRole = "ANALYST"
)

// NormalizeRole uppercases a raw role string. Role comparisons throughout
// the SDK happen on normalized values; the backend is case-insensitive.
func NormalizeRole(role string) UserRole {
	return UserRole(strings.ToUpper(role))
}

// IsValid checks if the role is one of the predefined valid roles
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEmployee, RoleClient, RoleAnalyst:
		return true
	default:
		return false
	}
}

// IsClient reports whether the role is the customer role.
func (r UserRole) IsClient() bool {
	return r == RoleClient
}

package printforge

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload the backend encodes in a bearer token. Every field
// is optional; the client reads them as advisory display data and never
// verifies the token signature. The backend alone validates tokens.
type Claims struct {
	jwt.RegisteredClaims
	ID        int64  `json:"id,omitempty"`
	Role      string `json:"role,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	FullName  string `json:"full,omitempty"`
	Email     string `json:"email,omitempty"`
	// Active is a pointer so an absent claim reads as active.
	Active *bool `json:"isActive,omitempty"`
}

// UserID returns the numeric subject identifier.
func (c *Claims) UserID() int64 {
	return c.ID
}

// NormalizedRole returns the uppercased role.
func (c *Claims) NormalizedRole() UserRole {
	return NormalizeRole(c.Role)
}

// DisplayName returns the precomputed full name when the backend provides
// one, otherwise first and last name joined.
func (c *Claims) DisplayName() string {
	if c.FullName != "" {
		return c.FullName
	}
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// IsActive reports whether the account is active. Only an explicit false
// claim deactivates; absence means active.
func (c *Claims) IsActive() bool {
	return c.Active == nil || *c.Active
}

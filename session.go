package printforge

// Session holds the read-only view of authentication state derived from the
// stored token claims. It is recomputed as a whole on every token change;
// no field is ever mutated independently.
type Session struct {
	IsAuthenticated bool
	IsClient        bool
	UserRole        UserRole
	UserName        string
	UserEmail       string
	IsActive        bool
	// IsLoading is true only until the first derivation after startup.
	IsLoading bool
}

// DeriveSession converts decoded claims into a Session view. Nil claims
// yield the unauthenticated defaults. The function is pure and total; the
// controller calls it on every recomputation and relies on it never failing.
func DeriveSession(claims *Claims) Session {
	if claims == nil {
		return Session{IsActive: true}
	}

	role := claims.NormalizedRole()

	return Session{
		IsAuthenticated: true,
		IsClient:        role.IsClient(),
		UserRole:        role,
		UserName:        claims.DisplayName(),
		UserEmail:       claims.Email,
		IsActive:        claims.IsActive(),
	}
}

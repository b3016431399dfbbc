package entity

import "github.com/google/uuid"

// Principal is the authenticated caller of an operation, as reconstructed from
// a validated access token. It binds an identity to the roles it held when the
// token was issued, and is the single input to every role gate.
type Principal struct {
	UserID uuid.UUID
	Roles  Roles
}

// HasRole reports whether the principal holds the given role.
func (p Principal) HasRole(role Role) bool {
	return p.Roles.Contains(role)
}

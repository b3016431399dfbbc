// Package impl contains the implementation of the application's business logic.
package impl

import (
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
)

// requireRole is the shared role gate. Every state-changing operation calls it
// before touching a repository, so an unauthorized request fails before any
// ownership or status check runs.
func requireRole(principal entity.Principal, role entity.Role) error {
	if !principal.HasRole(role) {
		return domainerrors.ErrForbidden.WrapMessage("requires " + role.String() + " role")
	}

	return nil
}

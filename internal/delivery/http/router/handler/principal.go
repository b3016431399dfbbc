package handler

import (
	"harvest/internal/delivery/http/middleware"
	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// principalFrom returns the authenticated principal or an unauthenticated
// error if the auth middleware did not run on this route.
func principalFrom(c echo.Context) (entity.Principal, error) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return entity.Principal{}, domainerrors.ErrUnauthenticated.WrapMessage("no principal on request")
	}

	return principal, nil
}

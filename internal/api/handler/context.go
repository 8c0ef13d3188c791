package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindreboot/mindreboot-api/internal/api/middleware"
	"github.com/mindreboot/mindreboot-api/internal/core/domain"
	"github.com/mindreboot/mindreboot-api/internal/core/ports"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call: a valid role proves the middleware
// ran, and a user id is required for every authenticated operation.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	role, _ := c.Get(middleware.CtxRole).(domain.Role)
	if !role.Valid() {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing user identity")
	}

	email, _ := c.Get(middleware.CtxEmail).(string)
	return ports.Identity{UserID: userID, Email: email, Role: role}, nil
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mindreboot/mindreboot-api/internal/core/domain"
)

// RBAC enforces role-based access control against the identity injected by
// Auth. Roles are the closed domain enumeration, so call sites enumerate
// exactly which roles pass each gate.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(domain.Role)
			if !role.Valid() {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "insufficient permissions")
			}
			return next(c)
		}
	}
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mindreboot/mindreboot-api/internal/core/ports"
)

// Context keys for the identity injected by Auth. Downstream handlers must
// read identity from here, never from client-supplied fields.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRole   = "role"
)

// tokenCookie is the cookie fallback used by page navigation, where the
// Authorization header is not available.
const tokenCookie = "token"

// Auth extracts the bearer token (header first, cookie fallback), verifies
// it and injects the decoded identity into the request context. All
// failures yield a uniform 401.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			identity, err := tokens.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxUserID, identity.UserID)
			c.Set(CtxEmail, identity.Email)
			c.Set(CtxRole, identity.Role)

			return next(c)
		}
	}
}

func extractToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	if cookie, err := c.Cookie(tokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}

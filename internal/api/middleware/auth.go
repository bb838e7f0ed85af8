package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/liquidglass/storefront-api/internal/auth"
	"github.com/liquidglass/storefront-api/internal/core/domain"
)

// Context keys under which the verified identity is stored.
const (
	CtxUserID = "user_id"
	CtxRoles  = "roles"
)

// Auth extracts the session cookie, verifies the token and injects the
// decoded identity into the request context. It does no role checks; compose
// it with RequireAdmin for admin-only routes.
func Auth(codec *auth.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(auth.CookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
			}

			claims, err := codec.Verify(cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRoles, claims.Roles)

			return next(c)
		}
	}
}

// RequireAdmin enforces the admin role on an already-authenticated request.
// Every failure is terminal for the request; the caller must re-authenticate.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, _ := c.Get(CtxRoles).([]domain.Role)
			for _, r := range roles {
				if r == domain.RoleAdmin {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "Forbidden: Admin access required")
		}
	}
}

package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/liquidglass/storefront-api/internal/auth"
	"github.com/liquidglass/storefront-api/internal/core/domain"
)

// LoginPath is where page guards send unauthenticated or unauthorized
// sessions.
const LoginPath = "/login"

// PageAuth guards server-rendered admin pages. It shares the token
// verification primitive with Auth but signals failure differently: instead
// of a status-code error body, the browser is redirected to the login page
// (temporary redirect, never cached as permanent). On success the decoded
// identity is injected so the wrapped loader can merge it into its props.
func PageAuth(codec *auth.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(auth.CookieName)
			if err != nil || cookie.Value == "" {
				return c.Redirect(http.StatusFound, LoginPath)
			}

			claims, err := codec.Verify(cookie.Value)
			if err != nil {
				return c.Redirect(http.StatusFound, LoginPath)
			}

			if !claims.HasRole(domain.RoleAdmin) {
				return c.Redirect(http.StatusFound, LoginPath)
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRoles, claims.Roles)

			return next(c)
		}
	}
}

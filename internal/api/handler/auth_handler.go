package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/liquidglass/storefront-api/internal/api/metrics"
	"github.com/liquidglass/storefront-api/internal/auth"
	"github.com/liquidglass/storefront-api/internal/core/domain"
	"github.com/liquidglass/storefront-api/internal/core/ports"
)

// AuthHandler owns the login, logout and "who am I" endpoints. It is the only
// place session cookies are set or cleared.
type AuthHandler struct {
	authService ports.AuthService
	cookieTTL   time.Duration
	secure      bool
}

func NewAuthHandler(authService ports.AuthService, cookieTTL time.Duration, secure bool) *AuthHandler {
	return &AuthHandler{authService: authService, cookieTTL: cookieTTL, secure: secure}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a user and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required.")
	}
	if req.Email == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required.")
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		}
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	c.SetCookie(auth.SessionCookie(token, h.cookieTTL, h.secure))

	return c.JSON(http.StatusOK, messageResponse{Message: "Login successful!"})
}

// Logout clears the session cookie. It always succeeds, whether or not a
// session existed, and is idempotent. The signed token itself stays valid
// until natural expiry; there is no server-side denylist.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(auth.ClearCookie(h.secure))
	return c.JSON(http.StatusOK, messageResponse{Message: "Logout successful"})
}

// Me resolves the current session into a password-free user view.
//
// @Summary      Current session user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  messageResponse
// @Failure      404  {object}  messageResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	cookie, err := c.Cookie(auth.CookieName)
	if err != nil || cookie.Value == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}

	user, err := h.authService.ResolveSession(c.Request().Context(), cookie.Value)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{User: user})
}

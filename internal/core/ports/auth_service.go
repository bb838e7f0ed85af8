package ports

import (
	"context"

	"github.com/liquidglass/storefront-api/internal/core/domain"
)

// AuthService orchestrates login and session resolution. It is the sole
// producer of session tokens; logout is purely a cookie-clearing concern
// handled at the transport layer.
type AuthService interface {
	// Login verifies the credentials and returns a signed session token.
	// Unknown email and wrong password are indistinguishable: both return
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, error)
	// ResolveSession verifies the token and re-reads the user from the store,
	// returning a credential-free view. Any verification failure surfaces as
	// auth.ErrInvalidToken.
	ResolveSession(ctx context.Context, token string) (*domain.UserView, error)
}

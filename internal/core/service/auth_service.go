package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/liquidglass/storefront-api/internal/auth"
	"github.com/liquidglass/storefront-api/internal/core/domain"
	"github.com/liquidglass/storefront-api/internal/core/ports"
)

// dummyHash is compared against when the email is unknown so the failure path
// costs roughly the same as a real bcrypt mismatch (no user-enumeration via
// response timing). It is the widely published example bcrypt hash of
// "password"; no account carries it, the compare result is always discarded.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// AuthService implements login and session resolution on top of the snapshot
// store. It holds no state of its own: the cookie is the session.
type AuthService struct {
	store ports.Store
	codec *auth.Codec
	log   zerolog.Logger
}

func NewAuthService(store ports.Store, codec *auth.Codec, log zerolog.Logger) *AuthService {
	return &AuthService{store: store, codec: codec, log: log}
}

// Login verifies the credentials and issues a signed session token. Unknown
// emails and wrong passwords both return domain.ErrInvalidCredentials; the
// caller must not be able to tell them apart.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	snap, err := s.store.Read(ctx)
	if err != nil {
		return "", err
	}

	user := snap.UserByEmail(email)
	if user == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return "", domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log.Info().Str("user_id", user.ID).Msg("login rejected")
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.codec.Sign(user.ID, user.Roles)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("user_id", user.ID).Msg("login successful")
	return token, nil
}

// ResolveSession decodes the token and re-reads the user by id, returning a
// view with the password hash stripped. Verification failures surface as
// auth.ErrInvalidToken; a token for a since-removed user yields
// domain.ErrUserNotFound.
func (s *AuthService) ResolveSession(ctx context.Context, token string) (*domain.UserView, error) {
	claims, err := s.codec.Verify(token)
	if err != nil {
		return nil, err
	}

	snap, err := s.store.Read(ctx)
	if err != nil {
		return nil, err
	}

	user := snap.UserByID(claims.UserID)
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	view := user.SafeView()
	return &view, nil
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/liquidglass/storefront-api/internal/auth"
	"github.com/liquidglass/storefront-api/internal/core/domain"
)

func seedUser(t *testing.T, email, password string, roles ...domain.Role) domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return domain.User{
		ID:           "user-1",
		Email:        email,
		PasswordHash: string(hash),
		Roles:        roles,
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	user := seedUser(t, "admin@x.com", "adminpassword", domain.RoleAdmin, domain.RoleUser)
	store := newMemStore(domain.Snapshot{Users: []domain.User{user}})
	codec := auth.NewCodec("secret", time.Hour)
	svc := NewAuthService(store, codec, zerolog.Nop())

	token, err := svc.Login(context.Background(), "admin@x.com", "adminpassword")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("token invalid: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("expected userId %q, got %q", user.ID, claims.UserID)
	}
	if len(claims.Roles) != 2 || !claims.HasRole(domain.RoleAdmin) || !claims.HasRole(domain.RoleUser) {
		t.Fatalf("claims roles do not match stored roles: %v", claims.Roles)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	user := seedUser(t, "admin@x.com", "adminpassword", domain.RoleAdmin)
	store := newMemStore(domain.Snapshot{Users: []domain.User{user}})
	svc := NewAuthService(store, auth.NewCodec("secret", time.Hour), zerolog.Nop())

	_, err := svc.Login(context.Background(), "admin@x.com", "wrongpassword")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail_Indistinguishable(t *testing.T) {
	user := seedUser(t, "admin@x.com", "adminpassword", domain.RoleAdmin)
	store := newMemStore(domain.Snapshot{Users: []domain.User{user}})
	svc := NewAuthService(store, auth.NewCodec("secret", time.Hour), zerolog.Nop())

	_, unknownErr := svc.Login(context.Background(), "ghost@x.com", "whatever")
	_, wrongErr := svc.Login(context.Background(), "admin@x.com", "wrongpassword")

	// No user-enumeration: both failure modes collapse to the same error.
	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if unknownErr.Error() != wrongErr.Error() {
		t.Fatalf("failure modes distinguishable: %q vs %q", unknownErr, wrongErr)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	store := newMemStore(domain.Snapshot{})
	svc := NewAuthService(store, auth.NewCodec("secret", time.Hour), zerolog.Nop())

	if _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ResolveSession(t *testing.T) {
	user := seedUser(t, "admin@x.com", "adminpassword", domain.RoleAdmin, domain.RoleUser)
	store := newMemStore(domain.Snapshot{Users: []domain.User{user}})
	codec := auth.NewCodec("secret", time.Hour)
	svc := NewAuthService(store, codec, zerolog.Nop())

	token, err := svc.Login(context.Background(), "admin@x.com", "adminpassword")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	view, err := svc.ResolveSession(context.Background(), token)
	if err != nil {
		t.Fatalf("resolve session: %v", err)
	}
	if view.ID != user.ID || view.Email != user.Email {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestAuthService_ResolveSession_InvalidToken(t *testing.T) {
	store := newMemStore(domain.Snapshot{})
	svc := NewAuthService(store, auth.NewCodec("secret", time.Hour), zerolog.Nop())

	if _, err := svc.ResolveSession(context.Background(), "garbage"); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestAuthService_ResolveSession_UserGone(t *testing.T) {
	codec := auth.NewCodec("secret", time.Hour)
	token, err := codec.Sign("deleted-user", []domain.Role{domain.RoleUser})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	store := newMemStore(domain.Snapshot{})
	svc := NewAuthService(store, codec, zerolog.Nop())

	if _, err := svc.ResolveSession(context.Background(), token); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

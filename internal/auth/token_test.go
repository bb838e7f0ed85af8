package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/liquidglass/storefront-api/internal/core/domain"
)

func TestCodec_SignVerify_Roundtrip(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	token, err := codec.Sign("user-1", []domain.Role{domain.RoleAdmin, domain.RoleUser})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("expected userId user-1, got %q", claims.UserID)
	}
	if !claims.HasRole(domain.RoleAdmin) || !claims.HasRole(domain.RoleUser) {
		t.Fatalf("roles not preserved: %v", claims.Roles)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		t.Fatalf("validity window missing")
	}
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != time.Hour {
		t.Fatalf("expected 1h validity, got %v", ttl)
	}
}

func TestCodec_Verify_Expired(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	// Correctly signed token whose validity window has already closed.
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
		UserID: "user-1",
		Roles:  []domain.Role{domain.RoleAdmin},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := codec.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestCodec_Verify_WrongSecret(t *testing.T) {
	token, err := NewCodec("secret-a", time.Hour).Sign("user-1", nil)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewCodec("secret-b", time.Hour).Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for signature mismatch, got %v", err)
	}
}

func TestCodec_Verify_Malformed(t *testing.T) {
	codec := NewCodec("secret", time.Hour)
	if _, err := codec.Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestCodec_Verify_WrongAlgorithm(t *testing.T) {
	codec := NewCodec("secret", time.Hour)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"userId": "user-1",
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := codec.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for HS512 token, got %v", err)
	}
}

func TestCodec_MissingSecret(t *testing.T) {
	codec := NewCodec("", time.Hour)

	if _, err := codec.Sign("user-1", nil); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret on sign, got %v", err)
	}
	if _, err := codec.Verify("whatever"); !errors.Is(err, ErrMissingSecret) {
		t.Fatalf("expected ErrMissingSecret on verify, got %v", err)
	}
}

// Package auth holds the session token codec and the cookie adapter that
// carries tokens between the browser and the API. It does no authorization:
// role checks belong to the route guards.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/liquidglass/storefront-api/internal/core/domain"
)

// TokenTTL is the fixed session lifetime. Sessions are not renewable or
// sliding; expiry is evaluated lazily at verification time.
const TokenTTL = time.Hour

var ErrMissingSecret = errors.New("auth: signing secret is not configured")
var ErrInvalidToken = errors.New("auth: invalid or expired token")

// Claims is the structured payload embedded in a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string        `json:"userId"`
	Roles  []domain.Role `json:"roles"`
}

// HasRole reports whether the claims carry the given role.
func (c *Claims) HasRole(role domain.Role) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Codec signs and verifies session tokens with a server-held HS256 secret.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec returns a Codec with the given secret. A ttl <= 0 falls back to
// TokenTTL.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = TokenTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Sign issues a token for the given user. An unset secret fails
// deterministically rather than producing a guessable token.
func (c *Codec) Sign(userID string, roles []domain.Role) (string, error) {
	if len(c.secret) == 0 {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserID: userID,
		Roles:  roles,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify parses and validates a token. Malformed input, a signature mismatch
// and an expired validity window all collapse to ErrInvalidToken; callers
// never learn which one it was.
func (c *Codec) Verify(token string) (*Claims, error) {
	if len(c.secret) == 0 {
		return nil, ErrMissingSecret
	}

	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

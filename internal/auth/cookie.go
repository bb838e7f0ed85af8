package auth

import (
	"net/http"
	"time"
)

// CookieName is the session cookie carrying the signed token. The cookie is
// the session: nothing is stored server-side.
const CookieName = "auth_token"

// SessionCookie wraps a signed token in a cookie with the security attributes
// the browser needs: no script access, no cross-site sending, and a lifetime
// matching the token TTL. Secure must be true everywhere except local
// development.
func SessionCookie(token string, ttl time.Duration, secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}

// ClearCookie emits the same cookie with an empty value and an expiry in the
// past, guaranteeing browser-side deletion regardless of the original Max-Age.
func ClearCookie(secure bool) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteStrictMode,
	}
}

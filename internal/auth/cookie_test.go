package auth

import (
	"net/http"
	"testing"
	"time"
)

func TestSessionCookie_Attributes(t *testing.T) {
	c := SessionCookie("token123", time.Hour, true)

	if c.Name != "auth_token" {
		t.Fatalf("unexpected cookie name %q", c.Name)
	}
	if c.Value != "token123" {
		t.Fatalf("unexpected value %q", c.Value)
	}
	if !c.HttpOnly {
		t.Fatalf("cookie must be HttpOnly")
	}
	if c.SameSite != http.SameSiteStrictMode {
		t.Fatalf("cookie must be SameSite=Strict")
	}
	if !c.Secure {
		t.Fatalf("cookie must be Secure when requested")
	}
	if c.Path != "/" {
		t.Fatalf("unexpected path %q", c.Path)
	}
	if c.MaxAge != 3600 {
		t.Fatalf("expected Max-Age 3600, got %d", c.MaxAge)
	}
}

func TestClearCookie_DeletesRegardlessOfMaxAge(t *testing.T) {
	c := ClearCookie(false)

	if c.Name != "auth_token" {
		t.Fatalf("unexpected cookie name %q", c.Name)
	}
	if c.Value != "" {
		t.Fatalf("clearing cookie must have empty value")
	}
	if c.MaxAge >= 0 {
		t.Fatalf("clearing cookie must have negative Max-Age, got %d", c.MaxAge)
	}
	if !c.Expires.Equal(time.Unix(0, 0)) {
		t.Fatalf("clearing cookie must expire at epoch, got %v", c.Expires)
	}
	if !c.HttpOnly || c.SameSite != http.SameSiteStrictMode {
		t.Fatalf("clearing cookie must keep security attributes")
	}
}

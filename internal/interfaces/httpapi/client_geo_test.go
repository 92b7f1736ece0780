package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResolveClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.9:5123"
	if got := resolveClientIP(req); got != "10.0.0.9" {
		t.Fatalf("expected remote addr fallback, got %q", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := resolveClientIP(req); got != "203.0.113.7" {
		t.Fatalf("expected first forwarded address, got %q", got)
	}
}

func TestResolveCountryCode(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if got := resolveCountryCode(req); got != "ZZ" {
		t.Fatalf("expected unknown country, got %q", got)
	}

	req.Header.Set("CF-IPCountry", "id")
	if got := resolveCountryCode(req); got != "ID" {
		t.Fatalf("expected ID, got %q", got)
	}
}

package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	idgen "github.com/riskibarqy/football-pulse/internal/platform/id"
)

func TestRequestID_GeneratesAndPropagates(t *testing.T) {
	var seen string
	handler := RequestID(idgen.NewRandomGenerator(8), http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = requestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teams", nil))

	if seen == "" || rec.Header().Get(requestIDHeader) != seen {
		t.Fatalf("expected generated id in context and header, got %q / %q", seen, rec.Header().Get(requestIDHeader))
	}
}

func TestRequestID_KeepsValidInboundValue(t *testing.T) {
	handler := RequestID(idgen.NewRandomGenerator(8), http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/teams", nil)
	req.Header.Set(requestIDHeader, "edge-1234")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get(requestIDHeader); got != "edge-1234" {
		t.Fatalf("expected inbound id to be kept, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/teams", nil)
	req.Header.Set(requestIDHeader, "bad id <script>")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get(requestIDHeader); got == "" || got == "bad id <script>" {
		t.Fatalf("expected unsafe inbound id to be replaced, got %q", got)
	}
}

package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
)

func mustRequest(t *testing.T, path string) *http.Request {
	t.Helper()
	return httptest.NewRequest(http.MethodGet, path, nil)
}

func TestIsQuietRequestLog(t *testing.T) {
	if !isQuietRequestLog("http request", []any{"method", "GET", "path", "/healthz"}) {
		t.Fatalf("expected health check log to be skipped")
	}
	if !isQuietRequestLog("http request", []any{"path", "/static/app.css"}) {
		t.Fatalf("expected static asset log to be skipped")
	}
	if isQuietRequestLog("http request", []any{"path", "/view/statistics"}) {
		t.Fatalf("did not expect page log to be skipped")
	}
	if isQuietRequestLog("load page data failed", []any{"path", "/healthz"}) {
		t.Fatalf("did not expect non-request log to be skipped")
	}
}

func TestLogAttributes(t *testing.T) {
	attrs := logAttributes([]any{"competition_id", "2021", "status", 502, "error", errors.New("bad gateway"), "dangling"})
	if len(attrs) != 4 {
		t.Fatalf("expected 4 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "competition_id" || attrs[0].Value.AsString() != "2021" {
		t.Fatalf("unexpected competition_id attribute")
	}
	if attrs[1].Key != "status" || attrs[1].Value.AsInt64() != 502 {
		t.Fatalf("unexpected status attribute")
	}
	if attrs[2].Value.AsString() != "bad gateway" {
		t.Fatalf("expected error to be stringified")
	}
	if attrs[3].Key != "dangling" || attrs[3].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected dangling attribute")
	}
}

func TestLogValue_Duration(t *testing.T) {
	if got := logValue(1500 * time.Millisecond).AsString(); got != "1.5s" {
		t.Fatalf("unexpected duration value %q", got)
	}
}

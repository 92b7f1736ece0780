package httpapi

import (
	"context"
	"testing"
)

func TestIsHandlerSpan(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "proxy handler", in: "httpapi.Handler.ProxyCompetitions", want: true},
		{name: "health handler", in: "httpapi.Handler.Healthz", want: true},
		{name: "middleware", in: "httpapi.RequestLogging", want: false},
		{name: "response helper", in: "httpapi.writeError", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isHandlerSpan(tt.in); got != tt.want {
				t.Fatalf("isHandlerSpan(%q)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStartSpan_SkipsUntracedRequests(t *testing.T) {
	ctx := context.Background()
	got, span := startSpan(ctx, "httpapi.Handler.Healthz")
	defer span.End()

	if got != ctx {
		t.Fatalf("expected context to be returned unchanged")
	}
	if span.SpanContext().IsValid() || span.IsRecording() {
		t.Fatalf("expected a no-op span without a parent")
	}
}

package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var (
	apiTracer = otel.Tracer("github.com/riskibarqy/football-pulse/internal/interfaces/httpapi")
	noopSpan  = trace.SpanFromContext(context.Background())
)

// startSpan opens a child span for route handlers only. Middleware and response
// helpers share the request span, and untraced requests (health, static) get none.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if !trace.SpanContextFromContext(ctx).IsValid() || !isHandlerSpan(name) {
		return ctx, noopSpan
	}

	ctx, span := apiTracer.Start(ctx, name)
	if id := requestIDFromContext(ctx); id != "" {
		span.SetAttributes(attribute.String("http.request_id", id))
	}
	return ctx, span
}

func isHandlerSpan(name string) bool {
	return strings.HasPrefix(name, handlerSpanPrefix)
}

package usecase

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	usecaseTracer   = otel.Tracer("github.com/riskibarqy/football-pulse/internal/usecase")
	usecaseNoopSpan = trace.SpanFromContext(context.Background())
)

// startUsecaseSpan opens a child span only when the request is already traced.
// Callers tag it with the raw identifiers they were asked for, so rejected
// input still shows up on the trace.
func startUsecaseSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !trace.SpanContextFromContext(ctx).IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func competitionAttr(id string) attribute.KeyValue {
	return attribute.String("football.competition_id", id)
}

func entityAttr(kind, id string) attribute.KeyValue {
	return attribute.String("football."+kind+"_id", id)
}

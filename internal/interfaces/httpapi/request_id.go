package httpapi

import (
	"context"
	"net/http"
	"strings"

	idgen "github.com/riskibarqy/football-pulse/internal/platform/id"
)

const requestIDHeader = "X-Request-ID"

type contextKey string

const requestIDContextKey contextKey = "request_id"

// RequestID reuses a sane inbound X-Request-ID or mints one, echoes it on the
// response and stores it in the request context for logging.
func RequestID(gen idgen.Generator, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.RequestID")
		defer span.End()

		requestID := sanitizeRequestID(r.Header.Get(requestIDHeader))
		if requestID == "" {
			if generated, err := gen.NewID(); err == nil {
				requestID = generated
			}
		}
		if requestID != "" {
			w.Header().Set(requestIDHeader, requestID)
			ctx = context.WithValue(ctx, requestIDContextKey, requestID)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(requestIDContextKey).(string)
	return v
}

func sanitizeRequestID(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" || len(value) > 64 {
		return ""
	}
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
		default:
			return ""
		}
	}
	return value
}

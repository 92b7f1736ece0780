package httpapi

import (
	"net/http"

	idgen "github.com/riskibarqy/football-pulse/internal/platform/id"
	"github.com/riskibarqy/football-pulse/internal/platform/logging"
)

// PageRegistrar mounts server-rendered pages on the shared mux.
type PageRegistrar interface {
	Register(mux *http.ServeMux)
}

func NewRouter(
	handler *Handler,
	pages PageRegistrar,
	logger *logging.Logger,
	swaggerEnabled bool,
	corsAllowedOrigins []string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, swaggerEnabled)
	registerProxyRoutes(mux, handler)
	if pages != nil {
		pages.Register(mux)
	}

	return RequestTracing(
		RequestID(idgen.NewRandomGenerator(8),
			RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, mux)))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

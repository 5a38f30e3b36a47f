package httpapi

import (
	"net/http"

	"github.com/riskibarqy/cricket-live/internal/platform/logging"
)

type RouterOptions struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	// MetricsHandler serves GET /metrics when set.
	MetricsHandler http.Handler
}

func NewRouter(handler *Handler, verifier TokenVerifier, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts)
	for _, prefix := range routePrefixes {
		registerLiveScoreRoutes(mux, prefix, handler)
		registerMatchRoutes(mux, prefix, handler, verifier)
	}

	return RequestTracing(RequestLogging(logger, CORS(opts.CORSAllowedOrigins, recoverPanic(logger, mux))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

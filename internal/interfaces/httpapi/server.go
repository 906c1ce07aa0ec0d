package httpapi

import (
	"net/http"

	"github.com/riskibarqy/racha-league/internal/platform/id"
	"github.com/riskibarqy/racha-league/internal/platform/logging"
	"github.com/riskibarqy/racha-league/internal/platform/metrics"
)

type RouterConfig struct {
	CORSAllowedOrigins []string
	Metrics            *metrics.Recorder
	IDGenerator        id.Generator
}

func NewRouter(handler *Handler, logger *logging.Logger, cfg RouterConfig) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.IDGenerator == nil {
		cfg.IDGenerator = id.NewUUIDGenerator()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, cfg.Metrics)
	registerRachaRoutes(mux, handler)
	registerPreviewRoutes(mux, handler)

	return RequestTracing(
		RequestID(cfg.IDGenerator,
			RequestLogging(logger,
				CORS(cfg.CORSAllowedOrigins,
					recoverPanic(logger,
						RequestMetrics(cfg.Metrics, mux))))))
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

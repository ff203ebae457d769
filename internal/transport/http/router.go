package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"ibankit/internal/platform/middleware"
)

// Routes is implemented by every handler that mounts endpoints.
type Routes interface {
	Register(r chi.Router)
}

// RouterConfig carries the transport limits and optional collaborators.
type RouterConfig struct {
	RequestTimeout time.Duration
	MaxBodyBytes   int64

	// Metrics records per-route latency when set.
	Metrics *middleware.Metrics
	// MetricsHandler is mounted on /metrics when set.
	MetricsHandler http.Handler
}

// NewRouter wires all public endpoints with middleware.
func NewRouter(logger *slog.Logger, cfg RouterConfig, routes ...Routes) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Latency(cfg.Metrics))
	if cfg.RequestTimeout > 0 {
		r.Use(middleware.Timeout(cfg.RequestTimeout))
	}
	if cfg.MaxBodyBytes > 0 {
		r.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	}
	r.Use(middleware.ContentTypeJSON)

	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}
	for _, route := range routes {
		route.Register(r)
	}

	return r
}

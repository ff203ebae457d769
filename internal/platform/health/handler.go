// Package health provides HTTP health check endpoints for liveness, readiness, and status probes.
package health

import (
	"errors"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"ibankit/pkg/bban"
	"ibankit/pkg/platform/httputil"
)

// Version is set at build time via ldflags.
var Version = "dev"

// CheckFunc returns nil if the dependency is healthy.
type CheckFunc func() error

// Handler provides health check endpoints. Readiness always includes the
// BBAN registry check; more checks can be registered.
type Handler struct {
	startTime   time.Time
	environment string
	registry    *bban.Registry

	mu     sync.RWMutex
	checks map[string]CheckFunc
}

// New creates a health handler reporting on registry.
func New(environment string, registry *bban.Registry) *Handler {
	h := &Handler{
		startTime:   time.Now(),
		environment: environment,
		registry:    registry,
		checks:      make(map[string]CheckFunc),
	}
	h.checks["bban_registry"] = h.checkRegistry
	return h
}

// RegisterCheck adds a named health check for the readiness probe.
func (h *Handler) RegisterCheck(name string, check CheckFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checks[name] = check
}

// Register mounts health check routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/health", h.HandleStatus)
	r.Get("/health/live", h.HandleLiveness)
	r.Get("/health/ready", h.HandleReadiness)
}

func (h *Handler) checkRegistry() error {
	if h.registry == nil || h.registry.Len() == 0 {
		return errors.New("no BBAN structures registered")
	}
	return nil
}

type LivenessResponse struct {
	Status string `json:"status"`
}

// HandleLiveness always returns 200 OK while the process is serving.
func (h *Handler) HandleLiveness(w http.ResponseWriter, _ *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, LivenessResponse{Status: "alive"})
}

type ReadinessResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HandleReadiness runs every check and returns 503 if any fails.
func (h *Handler) HandleReadiness(w http.ResponseWriter, _ *http.Request) {
	h.mu.RLock()
	checks := make(map[string]CheckFunc, len(h.checks))
	maps.Copy(checks, h.checks)
	h.mu.RUnlock()

	response := ReadinessResponse{Status: "ready", Checks: make(map[string]string, len(checks))}
	for name, check := range checks {
		if err := check(); err != nil {
			response.Checks[name] = "down: " + err.Error()
			response.Status = "not_ready"
		} else {
			response.Checks[name] = "up"
		}
	}

	status := http.StatusOK
	if response.Status != "ready" {
		status = http.StatusServiceUnavailable
	}
	httputil.WriteJSON(w, status, response)
}

type StatusResponse struct {
	Status             string `json:"status"`
	Version            string `json:"version"`
	Environment        string `json:"environment"`
	SupportedCountries int    `json:"supported_countries"`
	UptimeSeconds      int64  `json:"uptime_seconds"`
	Timestamp          string `json:"timestamp"`
}

// HandleStatus reports version, uptime and the number of IBAN countries served.
func (h *Handler) HandleStatus(w http.ResponseWriter, _ *http.Request) {
	supported := 0
	if h.registry != nil {
		supported = h.registry.Len()
	}
	httputil.WriteJSON(w, http.StatusOK, StatusResponse{
		Status:             "healthy",
		Version:            Version,
		Environment:        h.environment,
		SupportedCountries: supported,
		UptimeSeconds:      int64(time.Since(h.startTime).Seconds()),
		Timestamp:          time.Now().UTC().Format(time.RFC3339),
	})
}

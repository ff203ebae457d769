package service

import (
	"log/slog"

	idmetrics "ibankit/internal/identifier/metrics"
	"ibankit/internal/platform/tracer"
	"ibankit/pkg/iban"
)

// serviceConfig holds optional dependencies for the service.
type serviceConfig struct {
	logger        *slog.Logger
	metrics       *idmetrics.Metrics
	tracer        tracer.Tracer
	defaultPolicy iban.Policy
	maxBatch      int
	batchWorkers  int
}

// Option configures a service.
type Option func(c *serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithMetrics(m *idmetrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(c *serviceConfig) {
		c.tracer = t
	}
}

// WithDefaultPolicy sets the policy used by requests that do not name one.
func WithDefaultPolicy(p iban.Policy) Option {
	return func(c *serviceConfig) {
		c.defaultPolicy = p
	}
}

// WithBatchLimits bounds batch validation. Non-positive values keep the defaults.
func WithBatchLimits(maxBatch, workers int) Option {
	return func(c *serviceConfig) {
		if maxBatch > 0 {
			c.maxBatch = maxBatch
		}
		if workers > 0 {
			c.batchWorkers = workers
		}
	}
}

package middleware

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	EndpointLatency *prometheus.HistogramVec
}

// NewMetrics registers the HTTP collectors on the default registry.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		EndpointLatency: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ibankit_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}

func (m *Metrics) ObserveEndpointLatency(endpoint string, durationSeconds float64) {
	m.EndpointLatency.WithLabelValues(endpoint).Observe(durationSeconds)
}

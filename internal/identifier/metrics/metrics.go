package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels for validation counters.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
)

type Metrics struct {
	Validations        *prometheus.CounterVec
	Violations         *prometheus.CounterVec
	OperationDuration  *prometheus.HistogramVec
	BatchSize          prometheus.Histogram
	GeneratedByCountry *prometheus.CounterVec
}

// New registers the identifier collectors on the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the collectors on reg. Tests pass a fresh
// prometheus.NewRegistry() so repeated construction does not collide.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Validations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ibankit_validations_total",
			Help: "Total number of identifier validations by kind and result",
		}, []string{"kind", "result"}),
		Violations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ibankit_violations_total",
			Help: "Total number of rejected identifiers by violation code",
		}, []string{"code"}),
		OperationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ibankit_operation_duration_seconds",
			Help:    "Duration of identifier operations",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"operation"}),
		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ibankit_batch_size",
			Help:    "Number of identifiers per batch validation request",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
		GeneratedByCountry: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ibankit_generated_total",
			Help: "Total number of built or randomly generated IBANs by country",
		}, []string{"country"}),
	}
}

func (m *Metrics) IncrementValidation(kind string, valid bool) {
	result := ResultValid
	if !valid {
		result = ResultInvalid
	}
	m.Validations.WithLabelValues(kind, result).Inc()
}

func (m *Metrics) IncrementViolation(code string) {
	m.Violations.WithLabelValues(code).Inc()
}

func (m *Metrics) ObserveOperation(operation string, start time.Time) {
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveBatchSize(n int) {
	m.BatchSize.Observe(float64(n))
}

func (m *Metrics) IncrementGenerated(country string) {
	m.GeneratedByCountry.WithLabelValues(country).Inc()
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

// Outcome labels for auth operations.
const (
	OutcomeSuccess     = "success"
	OutcomeInvalid     = "invalid"
	OutcomeDenied      = "denied"
	OutcomeConflict    = "conflict"
	OutcomeError       = "error"
	OutcomeRateLimited = "rate_limited"
)

// Metrics holds the auth collectors registered on one registry.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
}

// New registers the auth collectors plus the Go and process collectors on a
// private registry, so tests can build as many instances as they like.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return NewWithRegistry(registry)
}

func NewWithRegistry(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_operations_total",
			Help: "Total number of authentication operations by operation and outcome",
		}, []string{"operation", "outcome"}),
	}
	registry.MustRegister(m.operations)
	return m
}

// Record counts one operation. A nil receiver is a no-op so components can
// run without metrics.
func (m *Metrics) Record(operation, outcome string) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, outcome).Inc()
}

// Count reports the current value of one counter.
func (m *Metrics) Count(operation, outcome string) float64 {
	if m == nil {
		return 0
	}
	c, err := m.operations.GetMetricWithLabelValues(operation, outcome)
	if err != nil {
		return 0
	}
	var pb dto.Metric
	if err := c.Write(&pb); err != nil {
		return 0
	}
	return pb.GetCounter().GetValue()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Lookup outcomes.
const (
	OutcomeMatched     = "matched"
	OutcomeFallback    = "fallback"
	OutcomeInvalidDate = "invalid_date"
	OutcomeSourceError = "source_error"
	OutcomeError       = "error"
)

// Metrics owns its registry so each server (and each test) starts from zero.
type Metrics struct {
	registry *prometheus.Registry
	lookups  *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	lookups := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "biblemind",
		Name:      "reading_lookups_total",
		Help:      "Daily reading lookups by outcome.",
	}, []string{"outcome"})
	registry.MustRegister(lookups)

	return &Metrics{registry: registry, lookups: lookups}
}

func (m *Metrics) Lookup(outcome string) {
	m.lookups.WithLabelValues(outcome).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a Prometheus registry and, optionally, the HTTP server
// exposing it.
type Metrics struct {
	// Registry holds every collector created through this Metrics.
	Registry *prometheus.Registry

	// Server serves Registry on /metrics. nil when the address is empty.
	Server *http.Server

	namespace  string
	registerer prometheus.Registerer
}

// NewMetrics creates the registry described by cfg. Series registered
// through it carry a constant "service" label.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()
	wrapped := prometheus.WrapRegistererWith(prometheus.Labels{"service": cfg.ServiceName}, registry)

	if !cfg.DisableRuntimeCollectors {
		wrapped.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m := &Metrics{
		Registry:   registry,
		namespace:  cfg.namespace(),
		registerer: wrapped,
	}

	if addr := cfg.address(); addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", m.Handler())
		m.Server = &http.Server{Addr: addr, Handler: mux}
	}
	return m
}

// Handler returns an http.Handler serving the registry in the
// Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// Registerer returns the registerer that adds the service label.
func (m *Metrics) Registerer() prometheus.Registerer {
	return m.registerer
}

package api

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus metrics for the API. A private registry
// keeps repeated construction in tests from double-registering.
type Metrics struct {
	requestCounter   *prometheus.CounterVec
	latencyHistogram *prometheus.HistogramVec
	registry         *prometheus.Registry
}

// NewMetrics creates and registers the API metrics.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "guardiand_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		latencyHistogram: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "guardiand_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		registry: registry,
	}

	registry.MustRegister(m.requestCounter)
	registry.MustRegister(m.latencyHistogram)

	return m
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(method, path string, status int, seconds float64) {
	m.requestCounter.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.latencyHistogram.WithLabelValues(method, path).Observe(seconds)
}

// Handler returns the Prometheus scrape handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Package metrics exposes Prometheus collectors for store operations and
// HTTP requests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns its registry so tests can build independent instances.
type Metrics struct {
	registry *prometheus.Registry
	storeOps *prometheus.CounterVec
	stale    *prometheus.CounterVec
	requests *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "market_store_ops_total",
			Help: "Entity store operations by store, operation and outcome.",
		}, []string{"store", "op", "outcome"}),
		stale: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "market_store_stale_responses_total",
			Help: "Fetch responses dropped because a newer fetch was issued.",
		}, []string{"store"}),
		requests: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "market_http_request_duration_seconds",
			Help:    "HTTP request latency by method, route and status.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
	m.registry.MustRegister(m.storeOps, m.stale, m.requests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// ObserveOp implements store.Observer.
func (m *Metrics) ObserveOp(store, op, outcome string) {
	m.storeOps.WithLabelValues(store, op, outcome).Inc()
}

// ObserveStale implements store.Observer.
func (m *Metrics) ObserveStale(store string) {
	m.stale.WithLabelValues(store).Inc()
}

// ObserveRequest records one served request.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry is exposed for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

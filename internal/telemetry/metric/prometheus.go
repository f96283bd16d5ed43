// Package metric provides Prometheus metrics for redisgate.
//
// Metrics are served on a dedicated listener so the /metrics path never
// shadows the generic-command route on the main listener.
package metric

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds all gateway metrics on a private Prometheus registry.
type Registry struct {
	reg *prometheus.Registry

	// RequestsTotal counts HTTP requests by method, route, and status.
	RequestsTotal *prometheus.CounterVec

	// RequestDuration samples request latency by method and route.
	RequestDuration *prometheus.HistogramVec

	// RequestsInFlight tracks currently executing requests.
	RequestsInFlight prometheus.Gauge

	// StoreCommands counts commands relayed to the store by execution
	// mode (single, pipeline, transaction) and outcome (ok, error).
	StoreCommands *prometheus.CounterVec

	// BatchSize samples the number of commands per batch request.
	BatchSize prometheus.Histogram
}

// NewRegistry creates a metrics registry with process and Go runtime
// collectors pre-registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Registry{
		reg: reg,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "redisgate",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests processed, by method, route, and status code.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "redisgate",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency, by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		RequestsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "redisgate",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "HTTP requests currently being served.",
		}),
		StoreCommands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "redisgate",
			Subsystem: "store",
			Name:      "commands_total",
			Help:      "Commands relayed to the store, by mode and outcome.",
		}, []string{"mode", "outcome"}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "redisgate",
			Subsystem: "store",
			Name:      "batch_size",
			Help:      "Number of commands per batch request.",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100, 250},
		}),
	}

	reg.MustRegister(
		r.RequestsTotal,
		r.RequestDuration,
		r.RequestsInFlight,
		r.StoreCommands,
		r.BatchSize,
	)
	return r
}

// ObserveRequest records one completed HTTP request.
func (r *Registry) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	r.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// ObserveCommands records commands relayed to the store in one mode.
func (r *Registry) ObserveCommands(mode string, count int, failed bool) {
	outcome := "ok"
	if failed {
		outcome = "error"
	}
	r.StoreCommands.WithLabelValues(mode, outcome).Add(float64(count))
}

// MustRegister registers additional collectors, panicking on conflicts.
func (r *Registry) MustRegister(cs ...prometheus.Collector) {
	r.reg.MustRegister(cs...)
}

// Handler returns the HTTP handler exposing the registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry for tests.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

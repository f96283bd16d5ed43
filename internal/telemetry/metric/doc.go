// Package metric exposes Prometheus metrics for the gateway: HTTP
// request counters and latency histograms, store command counters, and
// connection-pool statistics, served on a dedicated listener.
package metric

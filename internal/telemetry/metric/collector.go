// Package metric provides Prometheus metrics for redisgate.
package metric

import "github.com/prometheus/client_golang/prometheus"

// PoolStats is a snapshot of the store client's connection pool.
type PoolStats struct {
	Hits       uint32
	Misses     uint32
	Timeouts   uint32
	TotalConns uint32
	IdleConns  uint32
	StaleConns uint32
}

// PoolStatsFunc supplies a pool snapshot at scrape time.
type PoolStatsFunc func() PoolStats

// StoreCollector exports the store client's connection pool statistics.
// It reads a fresh snapshot on every scrape.
type StoreCollector struct {
	stats PoolStatsFunc

	hits       *prometheus.Desc
	misses     *prometheus.Desc
	timeouts   *prometheus.Desc
	totalConns *prometheus.Desc
	idleConns  *prometheus.Desc
	staleConns *prometheus.Desc
}

// NewStoreCollector creates a collector backed by stats.
func NewStoreCollector(stats PoolStatsFunc) *StoreCollector {
	return &StoreCollector{
		stats: stats,
		hits: prometheus.NewDesc("redisgate_store_pool_hits_total",
			"Connection pool hits (free connection found).", nil, nil),
		misses: prometheus.NewDesc("redisgate_store_pool_misses_total",
			"Connection pool misses (new connection opened).", nil, nil),
		timeouts: prometheus.NewDesc("redisgate_store_pool_timeouts_total",
			"Connection waits that timed out.", nil, nil),
		totalConns: prometheus.NewDesc("redisgate_store_pool_conns",
			"Connections currently in the pool.", nil, nil),
		idleConns: prometheus.NewDesc("redisgate_store_pool_idle_conns",
			"Idle connections in the pool.", nil, nil),
		staleConns: prometheus.NewDesc("redisgate_store_pool_stale_conns_total",
			"Stale connections removed from the pool.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *StoreCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.timeouts
	ch <- c.totalConns
	ch <- c.idleConns
	ch <- c.staleConns
}

// Collect implements prometheus.Collector.
func (c *StoreCollector) Collect(ch chan<- prometheus.Metric) {
	s := c.stats()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(s.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(s.Misses))
	ch <- prometheus.MustNewConstMetric(c.timeouts, prometheus.CounterValue, float64(s.Timeouts))
	ch <- prometheus.MustNewConstMetric(c.totalConns, prometheus.GaugeValue, float64(s.TotalConns))
	ch <- prometheus.MustNewConstMetric(c.idleConns, prometheus.GaugeValue, float64(s.IdleConns))
	ch <- prometheus.MustNewConstMetric(c.staleConns, prometheus.CounterValue, float64(s.StaleConns))
}

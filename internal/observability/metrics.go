// Package observability provides logging, metrics, and tracing helpers shared by
// the repository, cache and server layers.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RedisErrors counts Redis errors by command.
	RedisErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_redis_errors_total",
		Help: "Total number of Redis errors by command",
	}, []string{"command"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "blog_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// CacheLookups counts cache-aside lookups by key family and result (hit, miss, error).
	CacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_cache_lookups_total",
		Help: "Cache-aside lookups by key and result",
	}, []string{"key", "result"})

	// DomainEvents counts published post/comment events by type and outcome.
	DomainEvents = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_domain_events_total",
		Help: "Domain events published to the event channel",
	}, []string{"event_type", "outcome"})
)

// Collectors returns every application collector so a registry can expose them.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{RedisErrors, DatabaseQueryLatency, CacheLookups, DomainEvents}
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}

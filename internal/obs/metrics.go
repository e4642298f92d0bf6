// Package obs provides Prometheus instrumentation for the recommendation
// service.
package obs

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	// CacheHits counts fetches served from the cache store, by domain.
	CacheHits *prometheus.CounterVec

	// CacheMisses counts fetches that had to go to a provider, by domain.
	CacheMisses *prometheus.CounterVec

	// CacheErrors counts store failures absorbed as forced misses.
	CacheErrors prometheus.Counter

	// SingleflightJoins counts callers that joined an in-flight fetch
	// instead of issuing their own provider call.
	SingleflightJoins *prometheus.CounterVec

	// ProviderFetches counts provider calls issued, by domain.
	ProviderFetches *prometheus.CounterVec

	// ProviderFailures counts provider calls that failed, by domain.
	ProviderFailures *prometheus.CounterVec

	// Registry is the registry all collectors are registered on.
	Registry *prometheus.Registry
}

// NewMetrics creates and registers the service collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		CacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Fetches served from the cache store",
		}, []string{"domain"}),
		CacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Fetches that went to a provider",
		}, []string{"domain"}),
		CacheErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "cache_errors_total",
			Help: "Cache store failures degraded to forced misses",
		}),
		SingleflightJoins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "singleflight_joins_total",
			Help: "Callers that joined an in-flight fetch for the same key",
		}, []string{"domain"}),
		ProviderFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "provider_fetches_total",
			Help: "Provider calls issued on cache miss",
		}, []string{"domain"}),
		ProviderFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "provider_failures_total",
			Help: "Provider calls that returned an error",
		}, []string{"domain"}),
		Registry: reg,
	}

	reg.MustRegister(
		m.CacheHits,
		m.CacheMisses,
		m.CacheErrors,
		m.SingleflightJoins,
		m.ProviderFetches,
		m.ProviderFailures,
	)

	return m
}

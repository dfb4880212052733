// Package metrics holds the service's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	Requests    *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
	CacheHits   *prometheus.CounterVec
	CacheMisses *prometheus.CounterVec
}

// New registers the collectors on a private registry so tests can build
// as many instances as they like.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "globe_http_requests_total",
				Help: "HTTP requests by route and status code.",
			},
			[]string{"route", "code"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "globe_http_request_duration_seconds",
				Help:    "HTTP request latency by route.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		CacheHits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "globe_leg_cache_hits_total",
				Help: "Leg cache hits by backend.",
			},
			[]string{"backend"},
		),
		CacheMisses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "globe_leg_cache_misses_total",
				Help: "Leg cache misses by backend.",
			},
			[]string{"backend"},
		),
	}

	m.registry.MustRegister(
		m.Requests,
		m.Duration,
		m.CacheHits,
		m.CacheMisses,
		collectors.NewGoCollector(),
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

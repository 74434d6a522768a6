// Package metrics exposes prometheus instrumentation for the tea graph
// engine: build-time graph gauges and per-query counters and latency.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/optimalsteep/teagraph/pkg/graph"
)

// Registry bundles every metric the engine emits, backed by a dedicated
// prometheus registry so tests can create isolated instances.
type Registry struct {
	registry *prometheus.Registry

	GraphNodesTotal *prometheus.GaugeVec
	GraphEdgesTotal prometheus.Gauge

	QueriesTotal     *prometheus.CounterVec
	QueryDuration    *prometheus.HistogramVec
	ResolutionsTotal *prometheus.CounterVec
}

// NewRegistry creates a Registry with all metrics registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initGraphMetrics()
	r.initQueryMetrics()
	return r
}

// Prometheus returns the underlying registry for HTTP exposition.
func (r *Registry) Prometheus() *prometheus.Registry {
	return r.registry
}

// RecordQuery records a completed query with its outcome.
func (r *Registry) RecordQuery(query, outcome string, duration time.Duration) {
	if r == nil {
		return
	}
	r.QueriesTotal.WithLabelValues(query, outcome).Inc()
	r.QueryDuration.WithLabelValues(query).Observe(duration.Seconds())
}

// RecordResolution records a keyword resolution attempt.
func (r *Registry) RecordResolution(method string, hit bool) {
	if r == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	r.ResolutionsTotal.WithLabelValues(method, outcome).Inc()
}

// UpdateGraphMetrics publishes the node and edge counts of a built graph.
func (r *Registry) UpdateGraphMetrics(g *graph.Graph) {
	if r == nil || g == nil {
		return
	}
	for typ, count := range g.CountByType() {
		r.GraphNodesTotal.WithLabelValues(typ.String()).Set(float64(count))
	}
	r.GraphEdgesTotal.Set(float64(g.EdgeCount()))
}

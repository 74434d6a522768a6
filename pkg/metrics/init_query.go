package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initQueryMetrics() {
	r.QueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "teagraph_queries_total",
			Help: "Total number of queries executed",
		},
		[]string{"query", "outcome"}, // outcome: ok, empty, not_found, no_data
	)

	r.QueryDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "teagraph_query_duration_seconds",
			Help:    "Duration of query execution in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0},
		},
		[]string{"query"},
	)

	r.ResolutionsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "teagraph_resolutions_total",
			Help: "Keyword resolution attempts by method and outcome",
		},
		[]string{"method", "outcome"},
	)
}

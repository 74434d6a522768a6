package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initGraphMetrics() {
	r.GraphNodesTotal = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "teagraph_nodes_total",
			Help: "Number of nodes in the built graph by node type",
		},
		[]string{"type"}, // category, tea, taste, health
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "teagraph_edges_total",
			Help: "Number of distinct undirected edges in the built graph",
		},
	)
}

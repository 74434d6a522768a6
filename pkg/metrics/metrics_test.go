package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/optimalsteep/teagraph/pkg/graph"
)

func TestUpdateGraphMetrics(t *testing.T) {
	g := graph.New()
	tea, _ := g.AddNode("sencha", graph.TypeTea)
	benefit, _ := g.AddNode("focus", graph.TypeHealth)
	g.AddEdge(tea.ID, benefit.ID)

	r := NewRegistry()
	r.UpdateGraphMetrics(g)

	if got := testutil.ToFloat64(r.GraphNodesTotal.WithLabelValues("tea")); got != 1 {
		t.Errorf("tea gauge = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.GraphEdgesTotal); got != 1 {
		t.Errorf("edge gauge = %v, want 1", got)
	}
}

func TestRecordQuery(t *testing.T) {
	r := NewRegistry()
	r.RecordQuery("recommend", "ok", 5*time.Millisecond)
	r.RecordQuery("recommend", "ok", 2*time.Millisecond)
	r.RecordQuery("compare", "not_found", time.Millisecond)

	if got := testutil.ToFloat64(r.QueriesTotal.WithLabelValues("recommend", "ok")); got != 2 {
		t.Errorf("recommend counter = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.QueriesTotal.WithLabelValues("compare", "not_found")); got != 1 {
		t.Errorf("compare counter = %v, want 1", got)
	}
}

func TestNilRegistryIsSafe(t *testing.T) {
	var r *Registry
	// Callers without metrics pass a nil registry; recording is a no-op.
	r.RecordQuery("recommend", "ok", time.Millisecond)
	r.RecordResolution("resolve", true)
	r.UpdateGraphMetrics(graph.New())
}

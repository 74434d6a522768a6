package algorithms

import (
	"testing"

	"github.com/optimalsteep/teagraph/pkg/graph"
)

// chainGraph builds health-tea-taste-tea-health: a 4-edge chain using only
// legal edge pairs.
func chainGraph(t *testing.T) (*graph.Graph, []uint32) {
	t.Helper()
	g := graph.New()
	h1, _ := g.AddNode("stress", graph.TypeHealth)
	t1, _ := g.AddNode("chamomile", graph.TypeTea)
	f1, _ := g.AddNode("floral", graph.TypeTaste)
	t2, _ := g.AddNode("jasmine", graph.TypeTea)
	h2, _ := g.AddNode("sleep", graph.TypeHealth)

	ids := []uint32{h1.ID, t1.ID, f1.ID, t2.ID, h2.ID}
	for i := 0; i < len(ids)-1; i++ {
		if _, err := g.AddEdge(ids[i], ids[i+1]); err != nil {
			t.Fatalf("AddEdge(%d, %d): %v", ids[i], ids[i+1], err)
		}
	}
	return g, ids
}

func TestShortestPath_SameNode(t *testing.T) {
	g, ids := chainGraph(t)

	path := ShortestPath(g, ids[0], ids[0])
	if len(path) != 1 || path[0] != ids[0] {
		t.Errorf("expected path [%d], got %v", ids[0], path)
	}
}

func TestShortestPath_DirectEdge(t *testing.T) {
	g, ids := chainGraph(t)

	path := ShortestPath(g, ids[0], ids[1])
	if len(path) != 2 || path[0] != ids[0] || path[1] != ids[1] {
		t.Errorf("expected [%d %d], got %v", ids[0], ids[1], path)
	}
}

func TestShortestPath_Chain(t *testing.T) {
	g, ids := chainGraph(t)

	path := ShortestPath(g, ids[0], ids[4])
	if len(path) != 5 {
		t.Fatalf("expected 5-node path, got %v", path)
	}
	for i, id := range ids {
		if path[i] != id {
			t.Errorf("path[%d] = %d, want %d", i, path[i], id)
		}
	}
}

func TestShortestPath_Undirected(t *testing.T) {
	g, ids := chainGraph(t)

	// Walking the chain backwards must work too.
	path := ShortestPath(g, ids[4], ids[0])
	if len(path) != 5 || path[0] != ids[4] || path[4] != ids[0] {
		t.Errorf("expected reversed 5-node path, got %v", path)
	}
}

func TestShortestPath_Disconnected(t *testing.T) {
	g, ids := chainGraph(t)
	island, _ := g.AddNode("hibiscus", graph.TypeTea)

	if path := ShortestPath(g, ids[0], island.ID); path != nil {
		t.Errorf("expected nil path to disconnected node, got %v", path)
	}
	if Reachable(g, ids[0], island.ID) {
		t.Error("disconnected node must not be reachable")
	}
}

func TestShortestPath_MissingNode(t *testing.T) {
	g, ids := chainGraph(t)
	if path := ShortestPath(g, ids[0], 999); path != nil {
		t.Errorf("expected nil path for missing node, got %v", path)
	}
}

func TestShortestPath_PrefersFewerHops(t *testing.T) {
	// stress - chamomile - floral - jasmine, plus a direct stress - jasmine
	// edge: the 1-hop route must win over the 3-hop route.
	g := graph.New()
	stress, _ := g.AddNode("stress", graph.TypeHealth)
	chamomile, _ := g.AddNode("chamomile", graph.TypeTea)
	floral, _ := g.AddNode("floral", graph.TypeTaste)
	jasmine, _ := g.AddNode("jasmine", graph.TypeTea)

	g.AddEdge(stress.ID, chamomile.ID)
	g.AddEdge(chamomile.ID, floral.ID)
	g.AddEdge(floral.ID, jasmine.ID)
	g.AddEdge(stress.ID, jasmine.ID)

	path := ShortestPath(g, stress.ID, jasmine.ID)
	if len(path) != 2 {
		t.Errorf("expected direct 2-node path, got %v", path)
	}
}

func TestShortestPath_CycleSafe(t *testing.T) {
	// Two teas sharing both a taste and a benefit form a cycle; BFS must
	// still terminate and find a shortest route through it.
	g := graph.New()
	taste, _ := g.AddNode("mint", graph.TypeTaste)
	benefit, _ := g.AddNode("digestion", graph.TypeHealth)
	teaA, _ := g.AddNode("peppermint", graph.TypeTea)
	teaB, _ := g.AddNode("spearmint", graph.TypeTea)

	g.AddEdge(teaA.ID, taste.ID)
	g.AddEdge(teaB.ID, taste.ID)
	g.AddEdge(teaA.ID, benefit.ID)
	g.AddEdge(teaB.ID, benefit.ID)

	path := ShortestPath(g, teaA.ID, teaB.ID)
	if len(path) != 3 {
		t.Errorf("expected 3-node path through the cycle, got %v", path)
	}
}

func TestShortestPath_Deterministic(t *testing.T) {
	g, ids := chainGraph(t)

	first := ShortestPath(g, ids[0], ids[4])
	for i := 0; i < 10; i++ {
		next := ShortestPath(g, ids[0], ids[4])
		if len(next) != len(first) {
			t.Fatalf("path length changed between runs: %v vs %v", first, next)
		}
		for j := range next {
			if next[j] != first[j] {
				t.Fatalf("path changed between runs: %v vs %v", first, next)
			}
		}
	}
}

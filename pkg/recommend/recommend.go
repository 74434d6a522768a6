package recommend

import (
	"sort"

	"github.com/optimalsteep/teagraph/pkg/algorithms"
	"github.com/optimalsteep/teagraph/pkg/graph"
	"github.com/optimalsteep/teagraph/pkg/logging"
	"github.com/optimalsteep/teagraph/pkg/search"
)

// Recommendation is one recommended tea together with the path that
// connects it to the queried health concern. The path is source-to-target
// node keys, kept for display and debugging.
type Recommendation struct {
	Tea  string
	Path []string
}

// Hops returns the number of edges on the recommendation's path.
func (r Recommendation) Hops() int {
	return len(r.Path) - 1
}

// RecommendForConcern recommends teas for a health concern, nearest first.
// The concern is resolved exact-then-substring; if it matches nothing, or
// matches a node that is not a health benefit, ErrConcernNotFound is
// returned. Every tea reachable from the concern is ranked by hop count;
// ties keep canonical node order (the sort is stable). At most limit
// results are returned; limit <= 0 means DefaultLimit.
func (e *Engine) RecommendForConcern(concern string, limit int) ([]Recommendation, error) {
	queryID, start := e.begin("recommend")
	if limit <= 0 {
		limit = DefaultLimit
	}

	node := search.Resolve(e.g, concern)
	e.met.RecordResolution("resolve", node != nil)
	if node == nil || node.Type != graph.TypeHealth {
		e.finish("recommend", queryID, start, outcomeNotFound)
		return nil, ErrConcernNotFound
	}

	var results []Recommendation
	for _, tea := range e.g.NodesOfType(graph.TypeTea) {
		path := algorithms.ShortestPath(e.g, node.ID, tea.ID)
		if path == nil {
			continue
		}
		results = append(results, Recommendation{
			Tea:  tea.Key,
			Path: e.g.Keys(path),
		})
	}

	// Fewer hops first; canonical order breaks ties.
	sort.SliceStable(results, func(i, j int) bool {
		return len(results[i].Path) < len(results[j].Path)
	})

	if len(results) > limit {
		results = results[:limit]
	}

	outcome := outcomeOK
	if len(results) == 0 {
		outcome = outcomeEmpty
	}
	e.finish("recommend", queryID, start, outcome)
	e.log.Info("recommendation computed",
		logging.String("concern", node.Key),
		logging.Int("results", len(results)))
	return results, nil
}

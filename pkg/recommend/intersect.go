package recommend

import (
	"sort"
	"strings"

	"github.com/optimalsteep/teagraph/pkg/graph"
	"github.com/optimalsteep/teagraph/pkg/logging"
	"github.com/optimalsteep/teagraph/pkg/search"
)

// TeaMatch is the result of a multi-concern intersection query.
// TasteMatched distinguishes "teas matched the taste preference" from the
// graceful fallback where the preference matched nothing and the unfiltered
// intersection is returned instead.
type TeaMatch struct {
	Teas         []string
	TasteMatched bool
}

// FindTeas finds teas directly adjacent to every one of the given health
// concerns (one-hop neighbors, not paths). Concerns that resolve to nothing
// or to a non-health node are silently dropped; if none survive,
// ErrConcernNotFound is returned. An empty intersection yields an empty
// TeaMatch, not an error.
//
// A non-empty tastePreference filters the intersection by substring match
// against each tea's taste description. When the filter eliminates
// everything, the unfiltered intersection is returned with
// TasteMatched=false rather than an empty result.
func (e *Engine) FindTeas(concerns []string, tastePreference string) (*TeaMatch, error) {
	queryID, start := e.begin("find_teas")

	var teaSets []map[uint32]struct{}
	for _, concern := range concerns {
		node := search.Resolve(e.g, concern)
		e.met.RecordResolution("resolve", node != nil)
		if node == nil || node.Type != graph.TypeHealth {
			continue
		}
		set := make(map[uint32]struct{})
		for _, tea := range e.g.NeighborsOfType(node.ID, graph.TypeTea) {
			set[tea.ID] = struct{}{}
		}
		teaSets = append(teaSets, set)
	}

	if len(teaSets) == 0 {
		e.finish("find_teas", queryID, start, outcomeNotFound)
		return nil, ErrConcernNotFound
	}

	common := teaSets[0]
	for _, set := range teaSets[1:] {
		next := make(map[uint32]struct{})
		for id := range common {
			if _, ok := set[id]; ok {
				next[id] = struct{}{}
			}
		}
		common = next
	}

	if len(common) == 0 {
		e.finish("find_teas", queryID, start, outcomeEmpty)
		return &TeaMatch{TasteMatched: true}, nil
	}

	commonTeas := e.sortedKeys(common)

	if tastePreference == "" {
		e.finish("find_teas", queryID, start, outcomeOK)
		return &TeaMatch{Teas: commonTeas, TasteMatched: true}, nil
	}

	pref := graph.NormalizeKey(tastePreference)
	var filtered []string
	for _, key := range commonTeas {
		node, _ := e.g.NodeByKey(key)
		if node == nil || node.Tea == nil {
			continue
		}
		if strings.Contains(strings.ToLower(node.Tea.Taste), pref) {
			filtered = append(filtered, key)
		}
	}

	if len(filtered) > 0 {
		e.finish("find_teas", queryID, start, outcomeOK)
		return &TeaMatch{Teas: filtered, TasteMatched: true}, nil
	}

	// Graceful degradation: no taste match, fall back to the unfiltered
	// intersection and let the caller say so.
	e.log.Info("no taste match, returning unfiltered intersection",
		logging.String("taste", pref),
		logging.Strings("teas", commonTeas))
	e.finish("find_teas", queryID, start, outcomeOK)
	return &TeaMatch{Teas: commonTeas, TasteMatched: false}, nil
}

// sortedKeys maps a set of node IDs to keys in canonical order.
func (e *Engine) sortedKeys(ids map[uint32]struct{}) []string {
	ordered := make([]uint32, 0, len(ids))
	for id := range ids {
		ordered = append(ordered, id)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i] < ordered[j] })

	keys := make([]string, 0, len(ordered))
	for _, id := range ordered {
		if node, ok := e.g.Node(id); ok {
			keys = append(keys, node.Key)
		}
	}
	return keys
}

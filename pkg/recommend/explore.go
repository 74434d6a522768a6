package recommend

import (
	"strings"

	"github.com/optimalsteep/teagraph/pkg/graph"
)

// characteristicTypes are the node types the explore query scans. The
// historical query also named origin and caffeine, but the builder stores
// those as tea attributes, never as standalone nodes, so only taste and
// health nodes can ever match. Introducing origin/caffeine nodes later only
// requires extending this set.
var characteristicTypes = map[graph.NodeType]bool{
	graph.TypeTaste:  true,
	graph.TypeHealth: true,
}

// CharacteristicMatch is one matched characteristic node and the teas
// directly adjacent to it.
type CharacteristicMatch struct {
	Characteristic string
	Teas           []string
}

// ExploreByCharacteristic scans characteristic nodes (tastes and health
// benefits) whose key contains the keyword and collects the teas adjacent
// to each. Matches follow canonical node order; an empty result means no
// characteristic matched.
func (e *Engine) ExploreByCharacteristic(keyword string) []CharacteristicMatch {
	queryID, start := e.begin("explore")

	key := graph.NormalizeKey(keyword)
	if key == "" {
		e.finish("explore", queryID, start, outcomeEmpty)
		return nil
	}

	var matches []CharacteristicMatch
	for _, node := range e.g.Nodes() {
		if !characteristicTypes[node.Type] {
			continue
		}
		if !strings.Contains(node.Key, key) {
			continue
		}
		teas := e.g.NeighborsOfType(node.ID, graph.TypeTea)
		if len(teas) == 0 {
			continue
		}
		match := CharacteristicMatch{Characteristic: node.Key}
		for _, tea := range teas {
			match.Teas = append(match.Teas, tea.Key)
		}
		matches = append(matches, match)
	}

	outcome := outcomeOK
	if len(matches) == 0 {
		outcome = outcomeEmpty
	}
	e.finish("explore", queryID, start, outcome)
	return matches
}

// FlattenTeas concatenates the teas of every match in order, without
// deduplication: a tea adjacent to several matched characteristics appears
// once per characteristic.
func FlattenTeas(matches []CharacteristicMatch) []string {
	var teas []string
	for _, m := range matches {
		teas = append(teas, m.Teas...)
	}
	return teas
}

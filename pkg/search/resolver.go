// Package search maps free-text user keywords to graph nodes.
package search

import (
	"strings"

	"github.com/optimalsteep/teagraph/pkg/graph"
)

// Resolve finds the node best matching a keyword: a case-insensitive exact
// key match wins; failing that, the first node (in canonical order) whose
// key contains the keyword as a substring. Returns nil when nothing
// matches. Absence is a normal result, not an error.
func Resolve(g *graph.Graph, keyword string) *graph.Node {
	key := graph.NormalizeKey(keyword)
	if key == "" {
		return nil
	}

	// Keys are unique, so there is at most one exact match.
	if node, ok := g.NodeByKey(key); ok {
		return node
	}

	for _, node := range g.Nodes() {
		if strings.Contains(node.Key, key) {
			return node
		}
	}
	return nil
}

// ResolveTeaOrCategory finds the first tea or category node (in canonical
// order) whose key contains the keyword. Unlike Resolve, there is no
// exact-match pass; substring containment is the only criterion.
func ResolveTeaOrCategory(g *graph.Graph, keyword string) *graph.Node {
	key := graph.NormalizeKey(keyword)
	if key == "" {
		return nil
	}

	for _, node := range g.Nodes() {
		if node.Type != graph.TypeTea && node.Type != graph.TypeCategory {
			continue
		}
		if strings.Contains(node.Key, key) {
			return node
		}
	}
	return nil
}

package recommend

import (
	"github.com/optimalsteep/teagraph/pkg/graph"
	"github.com/optimalsteep/teagraph/pkg/search"
)

// AttributeNotFound is the sentinel returned in place of an attribute a
// node does not carry. It is data, not an error: a comparison against it
// still proceeds unless a value is the "N/A" unavailability sentinel.
const AttributeNotFound = "attribute not found"

// Comparison is the result of comparing two teas on one attribute.
type Comparison struct {
	Attribute string
	Tea1      string
	Tea2      string
	Value1    string
	Value2    string
}

// CompareTeas looks both teas up with the tea/category resolver and compares
// the named attribute. ErrTeaNotFound is returned when either keyword fails
// to resolve; ErrNoComparisonData when either value is the "N/A" sentinel
// meaning the catalog carries no data for it.
func (e *Engine) CompareTeas(tea1, tea2, attribute string) (*Comparison, error) {
	queryID, start := e.begin("compare")

	node1 := search.ResolveTeaOrCategory(e.g, tea1)
	node2 := search.ResolveTeaOrCategory(e.g, tea2)
	e.met.RecordResolution("resolve_tea", node1 != nil)
	e.met.RecordResolution("resolve_tea", node2 != nil)
	if node1 == nil || node2 == nil {
		e.finish("compare", queryID, start, outcomeNotFound)
		return nil, ErrTeaNotFound
	}

	value1 := attributeOrSentinel(node1, attribute)
	value2 := attributeOrSentinel(node2, attribute)

	if value1 == graph.CaffeineUnknown || value2 == graph.CaffeineUnknown {
		e.finish("compare", queryID, start, outcomeNoData)
		return nil, ErrNoComparisonData
	}

	e.finish("compare", queryID, start, outcomeOK)
	return &Comparison{
		Attribute: attribute,
		Tea1:      node1.Key,
		Tea2:      node2.Key,
		Value1:    value1,
		Value2:    value2,
	}, nil
}

func attributeOrSentinel(node *graph.Node, attribute string) string {
	if value, ok := node.Attribute(attribute); ok {
		return value
	}
	return AttributeNotFound
}

package graph

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/optimalsteep/teagraph/pkg/catalog"
)

// TestBuildInvariants uses property-based testing to verify invariants that
// must hold for any input: builds are idempotent, edges never duplicate, and
// a node's type never changes once set.
func TestBuildInvariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)

	genToken := gen.RegexMatch(`[a-z]{1,8}`)

	properties.Property("build is idempotent", prop.ForAll(
		func(teas []string, benefits []string) bool {
			assocs := toAssociations(teas, benefits)
			b := NewBuilder(nil)
			g1 := b.Build(nil, assocs)
			g2 := b.Build(nil, assocs)

			if g1.NodeCount() != g2.NodeCount() || g1.EdgeCount() != g2.EdgeCount() {
				return false
			}
			for i, n1 := range g1.Nodes() {
				n2 := g2.Nodes()[i]
				if n1.Key != n2.Key || n1.Type != n2.Type {
					return false
				}
			}
			return true
		},
		gen.SliceOfN(3, genToken),
		gen.SliceOfN(3, genToken),
	))

	properties.Property("adding an edge twice never duplicates", prop.ForAll(
		func(teaKey, benefitKey string) bool {
			g := New()
			tea, _ := g.AddNode(teaKey, TypeTea)
			benefit, _ := g.AddNode(benefitKey, TypeHealth)
			if tea == nil || benefit == nil || tea.ID == benefit.ID {
				return true // same key resolved to one node; nothing to test
			}
			g.AddEdge(tea.ID, benefit.ID)
			before := g.EdgeCount()
			created, _ := g.AddEdge(tea.ID, benefit.ID)
			return !created && g.EdgeCount() == before
		},
		genToken,
		genToken,
	))

	properties.Property("node type is immutable", prop.ForAll(
		func(key string, first, second uint8) bool {
			t1 := NodeType(first % 4)
			t2 := NodeType(second % 4)
			g := New()
			node, _ := g.AddNode(key, t1)
			if node == nil {
				return true
			}
			merged, created := g.AddNode(key, t2)
			return !created && merged.Type == t1
		},
		genToken,
		gen.UInt8(),
		gen.UInt8(),
	))

	properties.TestingRun(t)
}

func toAssociations(teas, benefits []string) []catalog.AssociationRecord {
	records := make([]catalog.AssociationRecord, 0, len(teas))
	for i := range teas {
		records = append(records, catalog.AssociationRecord{
			TeaType:       teas[i],
			HealthBenefit: benefits[i%len(benefits)],
		})
	}
	return records
}

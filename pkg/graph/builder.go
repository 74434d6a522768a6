package graph

import (
	"sort"

	"github.com/optimalsteep/teagraph/pkg/catalog"
	"github.com/optimalsteep/teagraph/pkg/logging"
)

// Builder turns loaded catalog and association records into a graph.
// Building is purely additive and idempotent: the same inputs always yield
// the same node set, edge set and attributes.
//
// Insertion order is canonical and independent of Go map iteration: category
// names sorted, tea keys sorted within each category, tastes and benefits in
// their listed order, association rows in file order.
type Builder struct {
	log *logging.JSONLogger
}

// NewBuilder creates a builder logging through the given logger.
func NewBuilder(log *logging.JSONLogger) *Builder {
	if log == nil {
		log = logging.Discard()
	}
	return &Builder{log: log.With(logging.Component("builder"))}
}

// Build constructs the graph. Malformed records are skipped with a warning;
// a single bad entry never aborts the load.
func (b *Builder) Build(cat catalog.Catalog, associations []catalog.AssociationRecord) *Graph {
	g := New()

	categories := make([]string, 0, len(cat))
	for name := range cat {
		categories = append(categories, name)
	}
	sort.Strings(categories)

	for _, name := range categories {
		b.addCategory(g, name, cat[name])
	}
	for _, rec := range associations {
		b.addAssociation(g, rec)
	}

	b.log.Info("graph built",
		logging.Int("nodes", g.NodeCount()),
		logging.Int("edges", g.EdgeCount()))
	return g
}

func (b *Builder) addCategory(g *Graph, name string, entry catalog.CategoryEntry) {
	if len(entry.Types) == 0 {
		b.log.Warn("skipping category without teas", logging.String("category", name))
		return
	}
	category, _ := g.AddNode(name, TypeCategory)
	if category == nil {
		b.log.Warn("skipping category with empty name")
		return
	}

	teaKeys := make([]string, 0, len(entry.Types))
	for key := range entry.Types {
		teaKeys = append(teaKeys, key)
	}
	sort.Strings(teaKeys)

	for _, key := range teaKeys {
		b.addTea(g, category, key, entry.Types[key])
	}
}

func (b *Builder) addTea(g *Graph, category *Node, key string, rec catalog.TeaRecord) {
	if err := catalog.ValidateTea(rec); err != nil {
		b.log.Warn("skipping invalid tea record",
			logging.String("tea", key), logging.Error(err))
		return
	}

	name := rec.Name
	if NormalizeKey(name) == "" {
		name = key
	}
	tea, _ := g.AddNode(name, TypeTea)
	if tea == nil {
		b.log.Warn("skipping tea with empty name", logging.String("category", category.Key))
		return
	}

	attrs := TeaAttributes{
		Caffeine: orDefault(rec.Caffeine, CaffeineUnknown),
		Origin:   orDefault(rec.Origin, OriginUnknown),
		Taste:    orDefault(rec.TasteDescription, TasteUnknown),
	}
	if err := g.SetTeaAttributes(tea.ID, attrs); err != nil {
		// Key collided with a non-tea node created earlier; the type stays.
		b.log.Warn("tea key collides with existing node",
			logging.String("key", tea.Key), logging.Error(err))
	}

	if _, err := g.AddEdge(category.ID, tea.ID); err != nil {
		b.log.Warn("skipping category edge",
			logging.String("tea", tea.Key), logging.Error(err))
	}

	if rec.TasteDescription != "" {
		for _, flavor := range SplitList(rec.TasteDescription) {
			b.connect(g, tea, flavor, TypeTaste)
		}
	}
	for _, benefit := range rec.HealthBenefits {
		b.connect(g, tea, benefit, TypeHealth)
	}
}

func (b *Builder) addAssociation(g *Graph, rec catalog.AssociationRecord) {
	teas := SplitList(rec.TeaType)
	benefits := SplitList(rec.HealthBenefit)
	if len(teas) == 0 || len(benefits) == 0 {
		b.log.Warn("skipping empty association record")
		return
	}

	// Full cross-product: every listed tea connects to every listed benefit.
	for _, teaName := range teas {
		tea, _ := g.AddNode(teaName, TypeTea)
		for _, benefit := range benefits {
			b.connect(g, tea, benefit, TypeHealth)
		}
	}
}

// connect adds a node of the given type and an edge from the tea to it.
func (b *Builder) connect(g *Graph, tea *Node, key string, typ NodeType) {
	node, _ := g.AddNode(key, typ)
	if node == nil {
		return
	}
	if _, err := g.AddEdge(tea.ID, node.ID); err != nil {
		b.log.Warn("skipping edge",
			logging.String("tea", tea.Key),
			logging.String("to", node.Key),
			logging.Error(err))
	}
}

func orDefault(v, def string) string {
	if NormalizeKey(v) == "" {
		return def
	}
	return v
}

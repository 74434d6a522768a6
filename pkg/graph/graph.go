package graph

// Graph is the in-memory tea knowledge graph: a simple undirected, unweighted
// graph over typed nodes. It is built once at startup and only read
// afterwards; none of the query paths mutate it.
//
// Node IDs are dense indexes assigned in insertion order, which defines the
// canonical node ordering. Adjacency lists record neighbors in the order the
// edges were added, so traversal is deterministic for a given build.
type Graph struct {
	nodes []*Node
	byKey map[string]uint32

	adj     [][]uint32
	edgeSet map[uint64]struct{}
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		byKey:   make(map[string]uint32),
		edgeSet: make(map[uint64]struct{}),
	}
}

// AddNode creates a node for the normalized key, or returns the existing one.
// The boolean reports whether a new node was created. Re-inserting an
// existing key never changes its type.
func (g *Graph) AddNode(key string, typ NodeType) (*Node, bool) {
	k := NormalizeKey(key)
	if k == "" {
		return nil, false
	}
	if id, ok := g.byKey[k]; ok {
		return g.nodes[id], false
	}
	node := &Node{
		ID:   uint32(len(g.nodes)),
		Key:  k,
		Type: typ,
	}
	g.nodes = append(g.nodes, node)
	g.adj = append(g.adj, nil)
	g.byKey[k] = node.ID
	return node, true
}

// SetTeaAttributes overwrites the catalog attributes of a tea node
// (last writer wins).
func (g *Graph) SetTeaAttributes(id uint32, attrs TeaAttributes) error {
	node, ok := g.Node(id)
	if !ok {
		return ErrNodeNotFound
	}
	if node.Type != TypeTea {
		return ErrNotTea
	}
	node.Tea = &attrs
	return nil
}

// allowedEdge reports whether the pair of node types may be connected.
// Every legal edge has a tea on one end: category-tea, tea-taste, tea-health.
func allowedEdge(a, b NodeType) bool {
	if a == TypeTea {
		return b == TypeCategory || b == TypeTaste || b == TypeHealth
	}
	if b == TypeTea {
		return a == TypeCategory || a == TypeTaste || a == TypeHealth
	}
	return false
}

func edgeKey(a, b uint32) uint64 {
	if a > b {
		a, b = b, a
	}
	return uint64(a)<<32 | uint64(b)
}

// AddEdge connects two nodes with an undirected edge. Adding an edge that
// already exists is a no-op; the boolean reports whether a new edge was
// created.
func (g *Graph) AddEdge(a, b uint32) (bool, error) {
	if int(a) >= len(g.nodes) || int(b) >= len(g.nodes) {
		return false, ErrNodeNotFound
	}
	if a == b {
		return false, ErrSelfEdge
	}
	if !allowedEdge(g.nodes[a].Type, g.nodes[b].Type) {
		return false, ErrEdgePair
	}
	key := edgeKey(a, b)
	if _, dup := g.edgeSet[key]; dup {
		return false, nil
	}
	g.edgeSet[key] = struct{}{}
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
	return true, nil
}

// Node returns the node with the given ID.
func (g *Graph) Node(id uint32) (*Node, bool) {
	if int(id) >= len(g.nodes) {
		return nil, false
	}
	return g.nodes[id], true
}

// NodeByKey looks up a node by its (normalized) key.
func (g *Graph) NodeByKey(key string) (*Node, bool) {
	id, ok := g.byKey[NormalizeKey(key)]
	if !ok {
		return nil, false
	}
	return g.nodes[id], true
}

// HasEdge reports whether an edge exists between the two nodes.
func (g *Graph) HasEdge(a, b uint32) bool {
	_, ok := g.edgeSet[edgeKey(a, b)]
	return ok
}

// Nodes returns all nodes in canonical (insertion) order. The slice is a
// read-only view; callers must not modify it.
func (g *Graph) Nodes() []*Node {
	return g.nodes
}

// NodesOfType returns all nodes of the given type in canonical order.
func (g *Graph) NodesOfType(typ NodeType) []*Node {
	var out []*Node
	for _, n := range g.nodes {
		if n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

// Neighbors returns the IDs adjacent to a node, in edge insertion order.
// The slice is a read-only view.
func (g *Graph) Neighbors(id uint32) []uint32 {
	if int(id) >= len(g.adj) {
		return nil
	}
	return g.adj[id]
}

// NeighborsOfType returns the direct neighbors of a node filtered by type.
func (g *Graph) NeighborsOfType(id uint32, typ NodeType) []*Node {
	var out []*Node
	for _, nid := range g.Neighbors(id) {
		if n := g.nodes[nid]; n.Type == typ {
			out = append(out, n)
		}
	}
	return out
}

// Attributes returns the attribute mapping of the node with the given key,
// or ErrNodeNotFound if no such node exists. Non-tea nodes expose only their
// type.
func (g *Graph) Attributes(key string) (map[string]string, error) {
	node, ok := g.NodeByKey(key)
	if !ok {
		return nil, ErrNodeNotFound
	}
	attrs := map[string]string{"type": node.Type.String()}
	if node.Type == TypeTea && node.Tea != nil {
		attrs["caffeine"] = node.Tea.Caffeine
		attrs["origin"] = node.Tea.Origin
		attrs["taste"] = node.Tea.Taste
	}
	return attrs, nil
}

// Keys maps a path of node IDs to the corresponding node keys.
func (g *Graph) Keys(path []uint32) []string {
	keys := make([]string, 0, len(path))
	for _, id := range path {
		if n, ok := g.Node(id); ok {
			keys = append(keys, n.Key)
		}
	}
	return keys
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of distinct edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edgeSet) }

// CountByType returns the number of nodes per type, for stats reporting.
func (g *Graph) CountByType() map[NodeType]int {
	counts := make(map[NodeType]int, 4)
	for _, n := range g.nodes {
		counts[n.Type]++
	}
	return counts
}

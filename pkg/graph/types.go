package graph

import "strings"

// NodeType identifies what a node represents. A node's type is set once at
// creation and never changes, even if the same key is re-inserted later with
// a different type.
type NodeType uint8

const (
	TypeCategory NodeType = iota
	TypeTea
	TypeTaste
	TypeHealth
)

// String returns the string representation of a node type.
func (t NodeType) String() string {
	switch t {
	case TypeCategory:
		return "category"
	case TypeTea:
		return "tea"
	case TypeTaste:
		return "taste"
	case TypeHealth:
		return "health"
	default:
		return "unknown"
	}
}

// Sentinel attribute values used when the catalog carries no data for a tea.
const (
	CaffeineUnknown = "N/A"
	OriginUnknown   = "Unknown"
	TasteUnknown    = "N/A"
)

// TeaAttributes holds the catalog metadata of a tea node. Tea nodes
// introduced only by an association record carry no attributes at all
// (Node.Tea stays nil) until the catalog enriches them.
type TeaAttributes struct {
	Caffeine string
	Origin   string
	Taste    string // raw, unsplit taste description
}

// Node is a single entity in the tea graph. ID is a dense index assigned in
// insertion order; it doubles as the canonical node ordering that resolver
// tie-breaks and BFS neighbor expansion rely on.
type Node struct {
	ID   uint32
	Key  string
	Type NodeType
	Tea  *TeaAttributes
}

// Attribute returns the named attribute of the node. The boolean reports
// whether the node carries that attribute at all.
func (n *Node) Attribute(name string) (string, bool) {
	switch NormalizeKey(name) {
	case "type":
		return n.Type.String(), true
	case "caffeine":
		if n.Type == TypeTea && n.Tea != nil {
			return n.Tea.Caffeine, true
		}
	case "origin":
		if n.Type == TypeTea && n.Tea != nil {
			return n.Tea.Origin, true
		}
	case "taste":
		if n.Type == TypeTea && n.Tea != nil {
			return n.Tea.Taste, true
		}
	}
	return "", false
}

// NormalizeKey canonicalizes free text into a node key: trimmed and
// lower-cased. Every key entering the graph goes through this.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SplitList splits a comma-separated source field into normalized tokens,
// dropping empty and whitespace-only entries.
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if tok := NormalizeKey(p); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

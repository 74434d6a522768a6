package recommend

import (
	"github.com/optimalsteep/teagraph/pkg/algorithms"
	"github.com/optimalsteep/teagraph/pkg/graph"
	"github.com/optimalsteep/teagraph/pkg/logging"
	"github.com/optimalsteep/teagraph/pkg/search"
)

// PathStatus classifies the outcome of a single path target.
type PathStatus int

const (
	// PathFound: at least one candidate tea is reachable from the concern.
	PathFound PathStatus = iota
	// PathTargetNotFound: the keyword matched no tea or category.
	PathTargetNotFound
	// PathEmptyCategory: the keyword matched a category with no teas.
	PathEmptyCategory
	// PathUnreachable: candidates exist but none connects to the concern.
	PathUnreachable
)

// String returns the string representation of a path status.
func (s PathStatus) String() string {
	switch s {
	case PathFound:
		return "found"
	case PathTargetNotFound:
		return "target not found"
	case PathEmptyCategory:
		return "no teas in category"
	case PathUnreachable:
		return "no path"
	default:
		return "unknown"
	}
}

// PathReport is the per-target result of a shortest-path query. Each entry
// of Paths is a source-to-target sequence of node keys.
type PathReport struct {
	Target     string
	ResolvedAs string
	Status     PathStatus
	Paths      [][]string
}

// PathsBetween finds shortest paths from a health concern to each of the
// given tea or category keywords. The concern must resolve to a health
// node, otherwise ErrConcernNotFound is returned. A target resolving to a
// category is expanded to its direct tea neighbors and every one is
// attempted; the target succeeds if any of them is reachable.
func (e *Engine) PathsBetween(concern string, targets []string) ([]PathReport, error) {
	queryID, start := e.begin("paths_between")

	concernNode := search.Resolve(e.g, concern)
	e.met.RecordResolution("resolve", concernNode != nil)
	if concernNode == nil || concernNode.Type != graph.TypeHealth {
		e.finish("paths_between", queryID, start, outcomeNotFound)
		return nil, ErrConcernNotFound
	}

	reports := make([]PathReport, 0, len(targets))
	anyFound := false
	for _, target := range targets {
		report := e.pathsToTarget(concernNode, target)
		if report.Status == PathFound {
			anyFound = true
		}
		reports = append(reports, report)
	}

	outcome := outcomeOK
	if !anyFound {
		outcome = outcomeEmpty
	}
	e.finish("paths_between", queryID, start, outcome)
	e.log.Info("paths computed",
		logging.String("concern", concernNode.Key),
		logging.Int("targets", len(targets)))
	return reports, nil
}

// pathsToTarget resolves one target keyword and attempts a shortest path to
// each candidate tea behind it.
func (e *Engine) pathsToTarget(concern *graph.Node, target string) PathReport {
	node := search.ResolveTeaOrCategory(e.g, target)
	e.met.RecordResolution("resolve_tea", node != nil)
	if node == nil {
		return PathReport{Target: target, Status: PathTargetNotFound}
	}

	report := PathReport{Target: target, ResolvedAs: node.Key}

	candidates := []*graph.Node{node}
	if node.Type == graph.TypeCategory {
		candidates = e.g.NeighborsOfType(node.ID, graph.TypeTea)
		if len(candidates) == 0 {
			report.Status = PathEmptyCategory
			return report
		}
	}

	for _, tea := range candidates {
		path := algorithms.ShortestPath(e.g, concern.ID, tea.ID)
		if path == nil {
			continue
		}
		report.Paths = append(report.Paths, e.g.Keys(path))
	}

	if len(report.Paths) == 0 {
		report.Status = PathUnreachable
	} else {
		report.Status = PathFound
	}
	return report
}

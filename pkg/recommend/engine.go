// Package recommend is the query engine of the tea graph: five read-only
// query classes answered over an immutable, already-built graph.
package recommend

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/optimalsteep/teagraph/pkg/graph"
	"github.com/optimalsteep/teagraph/pkg/logging"
	"github.com/optimalsteep/teagraph/pkg/metrics"
)

// DefaultLimit caps recommendation results when the caller passes no limit.
const DefaultLimit = 5

// Sentinel outcomes. These are data-like results the presentation layer can
// branch on with errors.Is, not faults: a keyword that matches nothing and a
// comparison without data are ordinary answers.
var (
	ErrConcernNotFound  = errors.New("no matching health concern")
	ErrTeaNotFound      = errors.New("no matching tea")
	ErrNoComparisonData = errors.New("comparison data unavailable")
)

// Metric outcome labels
const (
	outcomeOK       = "ok"
	outcomeEmpty    = "empty"
	outcomeNotFound = "not_found"
	outcomeNoData   = "no_data"
)

// Engine answers queries over a borrowed read-only graph. Construction must
// fully precede the first query; the engine never mutates the graph.
type Engine struct {
	g   *graph.Graph
	log *logging.JSONLogger
	met *metrics.Registry
}

// NewEngine creates a query engine over the given graph. Logger and metrics
// registry may be nil.
func NewEngine(g *graph.Graph, log *logging.JSONLogger, met *metrics.Registry) *Engine {
	if log == nil {
		log = logging.Discard()
	}
	return &Engine{
		g:   g,
		log: log.With(logging.Component("engine")),
		met: met,
	}
}

// Graph returns the graph the engine reads from.
func (e *Engine) Graph() *graph.Graph {
	return e.g
}

// begin stamps a query with an ID for log correlation.
func (e *Engine) begin(query string) (string, time.Time) {
	queryID := uuid.NewString()
	e.log.Debug("query started",
		logging.String("query", query),
		logging.String("query_id", queryID))
	return queryID, time.Now()
}

// finish records the query outcome in logs and metrics.
func (e *Engine) finish(query, queryID string, start time.Time, outcome string) {
	duration := time.Since(start)
	e.met.RecordQuery(query, outcome, duration)
	e.log.Debug("query finished",
		logging.String("query", query),
		logging.String("query_id", queryID),
		logging.String("outcome", outcome),
		logging.Duration("duration", duration))
}

// ListTeas returns every tea in the graph in canonical order.
func (e *Engine) ListTeas() []string {
	teas := e.g.NodesOfType(graph.TypeTea)
	names := make([]string, 0, len(teas))
	for _, tea := range teas {
		names = append(names, tea.Key)
	}
	return names
}

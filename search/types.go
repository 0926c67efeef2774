package search

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by New and Run.
var (
	// ErrNilGrid is returned if a nil *grid.Grid is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrNoStart is returned when the grid has no start cell.
	ErrNoStart = errors.New("search: grid has no start cell")

	// ErrNoEnd is returned when the grid has no end cell.
	ErrNoEnd = errors.New("search: grid has no end cell")

	// ErrUnknownKind is returned for a Kind outside the declared set.
	ErrUnknownKind = errors.New("search: unknown algorithm kind")
)

// Kind selects one of the five traversal algorithms.
type Kind int

const (
	// AStar orders the frontier by F = G + Euclidean(cell, end) and relaxes
	// frontier cells in place. Returns cost-optimal paths.
	AStar Kind = iota
	// Dijkstra orders the frontier by G alone. Returns cost-optimal paths.
	Dijkstra
	// Greedy orders the frontier by Manhattan(cell, end) alone and never
	// revisits a discovered cell. It makes NO optimality guarantee: Manhattan
	// distance overestimates diagonal moves, and the first predecessor wins.
	Greedy
	// BFS expands cells level by level. Returns paths with the fewest edges,
	// which are not necessarily the cheapest by Euclidean cost.
	BFS
	// DFS expands the most recently discovered cell first. It makes no
	// optimality guarantee of any kind.
	DFS
)

var kindNames = [...]string{"astar", "dijkstra", "greedy", "bfs", "dfs"}

var kindTitles = [...]string{"A* search", "Dijkstra's", "Greedy", "Breadth First Search", "Depth First Search"}

// Kinds lists every valid Kind in declaration order.
func Kinds() []Kind {
	return []Kind{AStar, Dijkstra, Greedy, BFS, DFS}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k >= AStar && k <= DFS
}

// String returns the short lowercase name ("astar", "bfs", ...).
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// Title returns the display name used by front-ends ("A* search", ...).
func (k Kind) Title() string {
	if !k.Valid() {
		return k.String()
	}
	return kindTitles[k]
}

// Optimal reports whether the kind guarantees a minimum-cost path.
// Only AStar and Dijkstra do; Greedy, BFS and DFS do not.
func (k Kind) Optimal() bool {
	return k == AStar || k == Dijkstra
}

// FewestSteps reports whether the kind guarantees a path with the fewest
// edges. AStar and Dijkstra minimise cost instead; only BFS minimises edges.
func (k Kind) FewestSteps() bool {
	return k == BFS
}

// Status is the outcome of one Step.
type Status int

const (
	// Continue means the frontier is non-empty and the end was not reached.
	Continue Status = iota
	// Found means the end cell was expanded; a Witness is available.
	Found
	// Exhausted means the frontier emptied without reaching the end.
	// This is a normal outcome, not an error.
	Exhausted
)

// String returns "continue", "found" or "exhausted".
func (s Status) String() string {
	switch s {
	case Continue:
		return "continue"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Done reports whether s is terminal.
func (s Status) Done() bool {
	return s == Found || s == Exhausted
}

// Option configures a Searcher via functional arguments.
type Option func(*Options)

// Options holds the hooks and logger of a Searcher.
type Options struct {
	// Logger receives Debug records at episode start and on the terminal
	// status. Defaults to a discarding logger.
	Logger *slog.Logger

	// OnExpand is called when a cell is moved to the closed set.
	OnExpand func(c grid.Coord)

	// OnDiscover is called when a cell first enters the frontier, with the
	// cell it was discovered from.
	OnDiscover func(c, from grid.Coord)
}

// DefaultOptions returns Options with a discarding logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnExpand:   func(grid.Coord) {},
		OnDiscover: func(_, _ grid.Coord) {},
	}
}

// WithLogger routes search diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a callback run whenever a cell is expanded.
func WithOnExpand(fn func(c grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnDiscover registers a callback run whenever a cell enters the frontier.
func WithOnDiscover(fn func(c, from grid.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

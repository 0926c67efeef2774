package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/frontier"
	"github.com/katalvlaran/gridpath/grid"
)

// Searcher holds the mutable state of one search episode over one grid.
// It owns the grid exclusively until the episode ends; it is not safe for
// concurrent use.
type Searcher struct {
	g    *grid.Grid
	kind Kind
	opts Options

	start, end int
	endCoord   grid.Coord
	episode    uint64

	status   Status
	expanded int
	current  int

	closed *frontier.Set

	// Exactly one frontier is non-nil, chosen by kind.
	open  *frontier.IndexedHeap // AStar, Greedy
	lazy  *frontier.LazyHeap    // Dijkstra
	queue *frontier.Queue       // BFS
	stack *frontier.Stack       // DFS
	seen  *frontier.Set         // BFS, DFS: discovered cells

	buf []int
}

// New prepares a search episode of kind over g: it clears the grid's search
// bookkeeping and seeds the frontier with the start cell.
// Returns ErrNilGrid, ErrUnknownKind, ErrNoStart or ErrNoEnd.
func New(g *grid.Grid, kind Kind, opts ...Option) (*Searcher, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	start, ok := g.Start()
	if !ok {
		return nil, ErrNoStart
	}
	end, ok := g.End()
	if !ok {
		return nil, ErrNoEnd
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Len()
	s := &Searcher{
		g:        g,
		kind:     kind,
		opts:     o,
		start:    g.Index(start),
		end:      g.Index(end),
		endCoord: end,
		current:  grid.NoPred,
		closed:   frontier.NewSet(n),
		buf:      make([]int, 0, 8),
	}

	g.ClearSearch()
	s.episode = g.Episode()
	switch kind {
	case AStar:
		s.open = frontier.NewIndexedHeap(n)
		s.seedAStar()
	case Dijkstra:
		s.lazy = frontier.NewLazyHeap(n)
		s.seedDijkstra()
	case Greedy:
		s.open = frontier.NewIndexedHeap(n)
		s.seedGreedy()
	case BFS:
		s.queue = frontier.NewQueue(n)
		s.seen = frontier.NewSet(n)
		s.seedBFS()
	case DFS:
		s.stack = frontier.NewStack(n)
		s.seen = frontier.NewSet(n)
		s.seedDFS()
	}

	s.opts.Logger.Debug("search episode started",
		"kind", kind.String(), "start", start.String(), "end", end.String(),
		"height", g.Height(), "width", g.Width())

	return s, nil
}

// Step expands at most one cell and reports the resulting status.
// Once a terminal status is reached, further calls return it unchanged and
// do not touch the grid.
func (s *Searcher) Step() Status {
	if s.status.Done() {
		return s.status
	}

	u, ok := s.pop()
	if !ok {
		return s.finish(Exhausted)
	}

	cu := s.g.CellAt(u)
	cu.State = grid.Closed
	s.closed.Add(u)
	s.expanded++
	s.current = u
	s.opts.OnExpand(cu.Coord)

	if u == s.end {
		return s.finish(Found)
	}

	s.buf = s.g.AppendNeighbours(s.buf[:0], u)
	switch s.kind {
	case AStar:
		s.relaxAStar(u, s.buf)
	case Dijkstra:
		s.relaxDijkstra(u, s.buf)
	case Greedy:
		s.expandGreedy(u, s.buf)
	case BFS:
		s.expandBFS(u, s.buf)
	case DFS:
		s.expandDFS(u, s.buf)
	}

	return s.status
}

// Run steps until the search reaches a terminal status and returns it.
// At most Height×Width cells are expanded.
func (s *Searcher) Run() Status {
	for !s.Step().Done() {
	}
	return s.status
}

// Witness returns the proof of a successful search, required by Reconstruct.
// It is nil with ok == false unless the status is Found.
func (s *Searcher) Witness() (*Witness, bool) {
	if s.status != Found {
		return nil, false
	}
	return &Witness{g: s.g, start: s.start, end: s.end, kind: s.kind, episode: s.episode}, true
}

// Status returns the status of the latest Step.
func (s *Searcher) Status() Status { return s.status }

// Kind returns the algorithm driving this searcher.
func (s *Searcher) Kind() Kind { return s.kind }

// Grid returns the grid being searched.
func (s *Searcher) Grid() *grid.Grid { return s.g }

// Expanded returns the number of cells moved to the closed set so far.
func (s *Searcher) Expanded() int { return s.expanded }

// Current returns the most recently expanded cell.
func (s *Searcher) Current() (grid.Coord, bool) {
	if s.current == grid.NoPred {
		return grid.Coord{}, false
	}
	return s.g.Coordinate(s.current), true
}

// Closed returns the expanded cells in ascending row-major order.
func (s *Searcher) Closed() []grid.Coord {
	members := s.closed.Members()
	out := make([]grid.Coord, len(members))
	for k, idx := range members {
		out[k] = s.g.Coordinate(idx)
	}
	return out
}

// FrontierLen returns the number of frontier entries. For Dijkstra the
// count includes stale duplicates that will be skipped.
func (s *Searcher) FrontierLen() int {
	switch s.kind {
	case AStar, Greedy:
		return s.open.Len()
	case Dijkstra:
		return s.lazy.Len()
	case BFS:
		return s.queue.Len()
	default:
		return s.stack.Len()
	}
}

// pop removes the next cell to expand from the kind's frontier.
func (s *Searcher) pop() (int, bool) {
	switch s.kind {
	case AStar, Greedy:
		if s.open.Len() == 0 {
			return 0, false
		}
		idx, _ := s.open.Pop()
		return idx, true
	case Dijkstra:
		return s.popDijkstra()
	case BFS:
		if s.queue.Len() == 0 {
			return 0, false
		}
		return s.queue.Pop(), true
	default:
		if s.stack.Len() == 0 {
			return 0, false
		}
		return s.stack.Pop(), true
	}
}

// discover records v as entering the frontier from u.
func (s *Searcher) discover(v, u int) {
	cv := s.g.CellAt(v)
	cv.Pred = u
	cv.State = grid.Open
	s.opts.OnDiscover(cv.Coord, s.g.Coordinate(u))
}

func (s *Searcher) finish(st Status) Status {
	s.status = st
	s.opts.Logger.Debug("search episode finished",
		"kind", s.kind.String(), "status", st.String(),
		"expanded", s.expanded, "closed", s.closed.Len())
	return st
}

// Run is the run-to-completion entry point: it creates a Searcher for kind
// over g, runs it and returns the terminal status together with a Witness
// when the status is Found.
func Run(g *grid.Grid, kind Kind, opts ...Option) (Status, *Witness, error) {
	s, err := New(g, kind, opts...)
	if err != nil {
		return Exhausted, nil, err
	}
	st := s.Run()
	w, _ := s.Witness()
	return st, w, nil
}

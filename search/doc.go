// Package search finds a path between the start and end cells of a
// grid.Grid with one of five classic algorithms, either to completion or
// one expansion at a time for visualisation.
//
// What:
//
//   - AStar:    frontier ordered by F = G + Euclidean(cell, end); cells
//     already in the frontier are relaxed in place (decrease-key).
//     Returns a minimum-cost path.
//   - Dijkstra: frontier ordered by G; improvements push fresh entries and
//     stale ones are skipped on pop. Returns a minimum-cost path.
//   - Greedy:   frontier ordered by Manhattan(cell, end) only; the first
//     predecessor of a cell is final. NO optimality guarantee.
//   - BFS:      FIFO frontier. Returns a path with the fewest edges.
//   - DFS:      LIFO frontier. Returns some path.
//
// Moves are 8-connected; an orthogonal move costs 1 and a diagonal one √2.
// Ties in the priority frontiers are broken first-in first-out.
//
// Stepping:
//
//	s, err := search.New(g, search.AStar)
//	for st := s.Step(); st == search.Continue; st = s.Step() {
//	    redraw(g) // cells report Open / Closed as the search advances
//	}
//
// Step expands at most one cell and returns Continue, Found or Exhausted.
// After a terminal status Step is a no-op. Stopping early is done by simply
// not calling Step again; the core itself never blocks.
//
// Paths:
//
// A Witness is issued only when the status is Found. Reconstruct takes the
// witness, follows predecessors back from the end, marks those cells
// OnPath and returns the Path (coordinates and total cost). A broken chain
// yields an empty Path.
//
// Errors:
//
//   - ErrNilGrid:     g is nil.
//   - ErrNoStart:     the grid has no start cell.
//   - ErrNoEnd:       the grid has no end cell.
//   - ErrUnknownKind: kind is not one of the declared constants.
//
// An unreachable end is not an error: it is reported as Exhausted.
//
// Complexity (N = Height×Width):
//
//   - AStar, Dijkstra, Greedy: O(N log N) time, O(N) memory.
//   - BFS, DFS:                O(N) time, O(N) memory.
//
// A Searcher owns its grid for the duration of an episode and is not safe
// for concurrent use; starting a new episode on the same grid clears the
// previous episode's bookkeeping.
package search

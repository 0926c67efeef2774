package search

import "github.com/katalvlaran/gridpath/grid"

// seedDijkstra queues the start cell at distance 0.
func (s *Searcher) seedDijkstra() {
	c := s.g.CellAt(s.start)
	c.State = grid.Open
	s.lazy.Push(s.start, 0)
}

// popDijkstra pops entries until it finds one for a cell that is not yet
// closed. Stale duplicates are discarded without counting as a step.
func (s *Searcher) popDijkstra() (int, bool) {
	for s.lazy.Len() > 0 {
		idx, _ := s.lazy.Pop()
		if s.closed.Has(idx) {
			continue
		}
		return idx, true
	}
	return 0, false
}

// relaxDijkstra lowers the distance of every open or undiscovered neighbour
// reachable more cheaply through u and queues a fresh entry for it.
func (s *Searcher) relaxDijkstra(u int, nbrs []int) {
	cu := s.g.CellAt(u)
	for _, v := range nbrs {
		if s.closed.Has(v) {
			continue
		}
		cv := s.g.CellAt(v)
		nd := cu.G + grid.EdgeCost(cu.Coord, cv.Coord)

		switch {
		case cv.State == grid.Unseen:
			cv.G, cv.F = nd, nd
			s.discover(v, u)
		case nd < cv.G:
			cv.G, cv.F = nd, nd
			cv.Pred = u
		default:
			continue
		}
		s.lazy.Push(v, nd)
	}
}

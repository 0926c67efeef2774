package search

import "github.com/katalvlaran/gridpath/grid"

// seedGreedy queues the start cell keyed by its Manhattan distance to end.
func (s *Searcher) seedGreedy() {
	c := s.g.CellAt(s.start)
	c.H = grid.Manhattan(c.Coord, s.endCoord)
	c.F = c.H
	c.State = grid.Open
	s.open.Push(s.start, c.F)
}

// expandGreedy queues every neighbour of u that is neither closed nor
// already in the frontier. The first predecessor is final; G is filled in
// for reporting only and never drives the order.
func (s *Searcher) expandGreedy(u int, nbrs []int) {
	cu := s.g.CellAt(u)
	for _, v := range nbrs {
		if s.closed.Has(v) || s.open.Contains(v) {
			continue
		}
		cv := s.g.CellAt(v)
		cv.G = cu.G + grid.EdgeCost(cu.Coord, cv.Coord)
		cv.H = grid.Manhattan(cv.Coord, s.endCoord)
		cv.F = cv.H
		s.discover(v, u)
		s.open.Push(v, cv.F)
	}
}

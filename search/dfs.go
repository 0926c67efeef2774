package search

import "github.com/katalvlaran/gridpath/grid"

// seedDFS pushes the start cell.
func (s *Searcher) seedDFS() {
	s.g.CellAt(s.start).State = grid.Open
	s.seen.Add(s.start)
	s.stack.Push(s.start)
}

// expandDFS pushes each undiscovered neighbour of u. The predecessor is
// fixed on discovery and a cell is never pushed twice, so the last
// neighbour in row-major order is expanded next.
func (s *Searcher) expandDFS(u int, nbrs []int) {
	depth := s.g.CellAt(u).G + 1
	for _, v := range nbrs {
		if s.seen.Has(v) {
			continue
		}
		s.seen.Add(v)
		cv := s.g.CellAt(v)
		cv.G, cv.F = depth, depth
		s.discover(v, u)
		s.stack.Push(v)
	}
}

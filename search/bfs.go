package search

import "github.com/katalvlaran/gridpath/grid"

// seedBFS enqueues the start cell at depth 0.
func (s *Searcher) seedBFS() {
	s.g.CellAt(s.start).State = grid.Open
	s.seen.Add(s.start)
	s.queue.Push(s.start)
}

// expandBFS enqueues each undiscovered neighbour of u in row-major order.
// G holds the depth in edges.
func (s *Searcher) expandBFS(u int, nbrs []int) {
	depth := s.g.CellAt(u).G + 1
	for _, v := range nbrs {
		if s.seen.Has(v) {
			continue
		}
		s.seen.Add(v)
		cv := s.g.CellAt(v)
		cv.G, cv.F = depth, depth
		s.discover(v, u)
		s.queue.Push(v)
	}
}

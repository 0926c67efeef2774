package search

import "github.com/katalvlaran/gridpath/grid"

// seedAStar queues the start cell with G = 0 and F = H.
func (s *Searcher) seedAStar() {
	c := s.g.CellAt(s.start)
	c.G = 0
	c.H = grid.Euclidean(c.Coord, s.endCoord)
	c.F = c.H
	c.State = grid.Open
	s.open.Push(s.start, c.F)
}

// relaxAStar examines each passable neighbour v of the expanded cell u:
//  1. closed cells are skipped; Euclidean distance is consistent, so a
//     closed cell already holds its final G.
//  2. an undiscovered cell gets G, H, F and predecessor u and joins the
//     frontier.
//  3. a frontier cell whose G improves through u is updated in place.
func (s *Searcher) relaxAStar(u int, nbrs []int) {
	cu := s.g.CellAt(u)
	for _, v := range nbrs {
		if s.closed.Has(v) {
			continue
		}
		cv := s.g.CellAt(v)
		tentative := cu.G + grid.EdgeCost(cu.Coord, cv.Coord)

		if !s.open.Contains(v) {
			cv.G = tentative
			cv.H = grid.Euclidean(cv.Coord, s.endCoord)
			cv.F = cv.G + cv.H
			s.discover(v, u)
			s.open.Push(v, cv.F)
			continue
		}
		if tentative < cv.G {
			cv.G = tentative
			cv.F = cv.G + cv.H
			cv.Pred = u
			s.open.Update(v, cv.F)
		}
	}
}

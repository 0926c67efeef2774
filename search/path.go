package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Witness is issued by a Searcher whose status is Found. It is the only way
// to call Reconstruct, which keeps path extraction from running on an
// unfinished or failed search.
type Witness struct {
	g          *grid.Grid
	start, end int
	kind       Kind
	episode    uint64
}

// Kind returns the algorithm that produced the witness.
func (w *Witness) Kind() Kind { return w.kind }

// Path is an ordered list of cells from start to end together with the
// sum of Euclidean edge costs along it.
type Path struct {
	Coords []grid.Coord
	Cost   float64
}

// Empty reports whether the path has no cells.
func (p Path) Empty() bool { return len(p.Coords) == 0 }

// Edges returns the number of moves along the path.
func (p Path) Edges() int {
	if len(p.Coords) == 0 {
		return 0
	}
	return len(p.Coords) - 1
}

// String renders the path as "(0,0) -> (1,1) [cost=1.414]".
func (p Path) String() string {
	parts := make([]string, len(p.Coords))
	for k, c := range p.Coords {
		parts[k] = c.String()
	}
	return fmt.Sprintf("%s [cost=%.3f]", strings.Join(parts, " -> "), p.Cost)
}

// Reconstruct follows predecessors from the end cell back to the start,
// marks every cell on the way with OnPath and returns the path in
// start-to-end order.
//
// If the chain is broken (a cell without predecessor before the start, or
// a cycle) Reconstruct returns an empty Path and leaves the grid unmarked.
// The same holds for a witness whose episode is over: once another search
// has started on the grid, the predecessors belong to that search.
// It panics on a nil witness.
//
// Complexity: O(L) for a path of L cells.
func Reconstruct(w *Witness) Path {
	if w == nil {
		panic("search: Reconstruct called with nil witness")
	}
	g := w.g
	if w.episode != g.Episode() {
		return Path{}
	}

	// 1) Walk back from end, bounded by the cell count.
	rev := []int{w.end}
	for at := w.end; at != w.start; {
		at = g.CellAt(at).Pred
		if at == grid.NoPred || len(rev) >= g.Len() {
			return Path{}
		}
		rev = append(rev, at)
	}

	// 2) Reverse, mark and total.
	p := Path{Coords: make([]grid.Coord, len(rev))}
	for k := range rev {
		c := g.CellAt(rev[len(rev)-1-k])
		c.OnPath = true
		p.Coords[k] = c.Coord
		if k > 0 {
			p.Cost += grid.EdgeCost(p.Coords[k-1], c.Coord)
		}
	}
	return p
}

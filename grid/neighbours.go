package grid

import "math"

// offsets enumerates the 3×3 block around a cell in row-major order,
// excluding the centre. Every traversal uses this order so tie-breaking
// is reproducible.
var offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NeighbourIndices returns the arena indices of the in-bounds, non-obstacle
// cells at Chebyshev distance 1 from the cell at idx, in row-major order.
// The cell itself is never included.
// Complexity: O(1).
func (g *Grid) NeighbourIndices(idx int) []int {
	return g.AppendNeighbours(make([]int, 0, len(offsets)), idx)
}

// AppendNeighbours is NeighbourIndices writing into dst; searchers reuse
// one buffer across expansions.
func (g *Grid) AppendNeighbours(dst []int, idx int) []int {
	ci, cj := idx/g.width, idx%g.width
	for _, d := range offsets {
		ni, nj := ci+d[0], cj+d[1]
		if !g.InBounds(ni, nj) {
			continue
		}
		n := ni*g.width + nj
		if g.cells[n].Obstacle {
			continue
		}
		dst = append(dst, n)
	}
	return dst
}

// Neighbours returns the coordinates of the passable cells adjacent to c
// (8-connectivity) in row-major order. Out-of-bounds c yields nil.
func (g *Grid) Neighbours(c Coord) []Coord {
	if !g.InBounds(c.I, c.J) {
		return nil
	}
	idxs := g.NeighbourIndices(g.Index(c))
	out := make([]Coord, len(idxs))
	for k, n := range idxs {
		out[k] = g.Coordinate(n)
	}
	return out
}

// EdgeCost is the cost of moving between adjacent cells a and b:
// 1 for orthogonal moves and √2 for diagonal ones.
func EdgeCost(a, b Coord) float64 {
	return Euclidean(a, b)
}

// Euclidean returns the straight-line distance between a and b.
// It never overestimates the 8-connected path cost, so A* stays admissible.
func Euclidean(a, b Coord) float64 {
	di, dj := float64(a.I-b.I), float64(a.J-b.J)
	return math.Sqrt(di*di + dj*dj)
}

// Manhattan returns |Δi| + |Δj|. On an 8-connected grid it can overestimate
// the true cost, which is why Greedy may return non-shortest paths.
func Manhattan(a, b Coord) float64 {
	return float64(abs(a.I-b.I) + abs(a.J-b.J))
}

// Chebyshev returns max(|Δi|, |Δj|), the step count between a and b on an
// open 8-connected grid.
func Chebyshev(a, b Coord) int {
	return max(abs(a.I-b.I), abs(a.J-b.J))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package grid

// Reachable returns every passable cell connected to from under
// 8-connectivity, including from itself, in breadth-first order.
// An out-of-bounds or obstacle origin yields nil.
//
// Time:   O(H·W·8).
// Memory: O(H·W) for seen flags and the queue.
func (g *Grid) Reachable(from Coord) []Coord {
	if !g.InBounds(from.I, from.J) || g.At(from).Obstacle {
		return nil
	}
	seen := make([]bool, len(g.cells))
	return g.flood(g.Index(from), seen)
}

// Regions partitions the passable cells into 8-connected components.
// Components are ordered by their first cell in row-major order; each
// component lists its cells in breadth-first order from that first cell.
//
// Time:   O(H·W·8).
// Memory: O(H·W).
func (g *Grid) Regions() [][]Coord {
	seen := make([]bool, len(g.cells))
	var regions [][]Coord
	for idx := range g.cells {
		if seen[idx] || g.cells[idx].Obstacle {
			continue
		}
		regions = append(regions, g.flood(idx, seen))
	}
	return regions
}

// Connected reports whether a path of passable cells joins a and b.
func (g *Grid) Connected(a, b Coord) bool {
	for _, c := range g.Reachable(a) {
		if c == b {
			return true
		}
	}
	return false
}

// flood collects the component of i0 breadth-first, marking seen as it goes.
func (g *Grid) flood(i0 int, seen []bool) []Coord {
	seen[i0] = true
	queue := []int{i0}
	buf := make([]int, 0, len(offsets))

	for qi := 0; qi < len(queue); qi++ {
		buf = g.AppendNeighbours(buf[:0], queue[qi])
		for _, v := range buf {
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	out := make([]Coord, len(queue))
	for k, idx := range queue {
		out[k] = g.Coordinate(idx)
	}
	return out
}

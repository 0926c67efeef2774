package search_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// randomEpisode builds an n×n grid with roughly 30% obstacles and distinct
// start and end cells.
func randomEpisode(t *testing.T, r *rand.Rand, n int) *grid.Grid {
	t.Helper()
	g, err := grid.NewGrid(n, n)
	require.NoError(t, err)

	s := grid.Coord{I: r.Intn(n), J: r.Intn(n)}
	e := s
	for e == s {
		e = grid.Coord{I: r.Intn(n), J: r.Intn(n)}
	}
	for idx := 0; idx < g.Len(); idx++ {
		c := g.Coordinate(idx)
		if c != s && c != e && r.Float64() < 0.3 {
			require.NoError(t, g.SetObstacle(c.I, c.J))
		}
	}
	require.NoError(t, g.SetStart(s.I, s.J))
	require.NoError(t, g.SetEnd(e.I, e.J))
	return g
}

// referenceCosts computes minimum costs from the start by repeated
// relaxation over all cells until nothing changes (Bellman-Ford).
// Unreachable cells hold +Inf.
func referenceCosts(g *grid.Grid) []float64 {
	start, _ := g.Start()
	dist := make([]float64, g.Len())
	for k := range dist {
		dist[k] = math.Inf(1)
	}
	dist[g.Index(start)] = 0
	for changed := true; changed; {
		changed = false
		for u := 0; u < g.Len(); u++ {
			if math.IsInf(dist[u], 1) {
				continue
			}
			for _, v := range g.NeighbourIndices(u) {
				d := dist[u] + grid.EdgeCost(g.Coordinate(u), g.Coordinate(v))
				if d < dist[v]-1e-12 {
					dist[v] = d
					changed = true
				}
			}
		}
	}
	return dist
}

// referenceDepth returns the fewest edges from start to end, or -1.
func referenceDepth(g *grid.Grid) int {
	start, _ := g.Start()
	end, _ := g.End()
	depth := make([]int, g.Len())
	for k := range depth {
		depth[k] = -1
	}
	depth[g.Index(start)] = 0
	queue := []int{g.Index(start)}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range g.NeighbourIndices(u) {
			if depth[v] < 0 {
				depth[v] = depth[u] + 1
				queue = append(queue, v)
			}
		}
	}
	return depth[g.Index(end)]
}

// TestRandomGrids_AgainstReference cross-checks every algorithm on random
// 5×5 grids: found iff connected, contiguous paths, optimal costs for A*
// and Dijkstra and fewest edges for BFS.
func TestRandomGrids_AgainstReference(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	for round := 0; round < 300; round++ {
		g := randomEpisode(t, r, 5)
		start, _ := g.Start()
		end, _ := g.End()
		connected := g.Connected(start, end)
		best := referenceCosts(g)[g.Index(end)]
		depth := referenceDepth(g)

		for _, kind := range search.Kinds() {
			st, p := solve(t, g, kind)
			if !connected {
				require.Equal(t, search.Exhausted, st, "round %d %s\n%s", round, kind, g)
				continue
			}
			require.Equal(t, search.Found, st, "round %d %s\n%s", round, kind, g)
			requireContiguous(t, g, p)
			require.GreaterOrEqual(t, p.Cost, best-1e-9)

			switch {
			case kind.Optimal():
				require.InDelta(t, best, p.Cost, 1e-9, "round %d %s\n%s", round, kind, g)
			case kind.FewestSteps():
				require.Equal(t, depth, p.Edges(), "round %d %s\n%s", round, kind, g)
			}
		}
	}
}

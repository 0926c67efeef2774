package grid_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

//----------------------------------------------------------------------------//
// NewGrid, Parse and InBounds Tests
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects non-positive dimensions.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		h, w int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"Negative", -1, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewGrid(tc.h, tc.w)
			if !errors.Is(err, grid.ErrEmptyGrid) {
				t.Errorf("NewGrid(%d,%d) error = %v; want ErrEmptyGrid", tc.h, tc.w, err)
			}
		})
	}
}

// TestNewGrid_Fresh checks that every cell starts free with no predecessor.
func TestNewGrid_Fresh(t *testing.T) {
	g, err := grid.NewGrid(2, 3)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	if g.Height() != 2 || g.Width() != 3 || g.Len() != 6 {
		t.Fatalf("dims = %dx%d len %d; want 2x3 len 6", g.Height(), g.Width(), g.Len())
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			c := g.Cell(i, j)
			if c.Coord != (grid.Coord{I: i, J: j}) {
				t.Errorf("cell (%d,%d) has coord %v", i, j, c.Coord)
			}
			if c.Obstacle || c.Start || c.End || c.OnPath || c.Pred != grid.NoPred || c.State != grid.Unseen {
				t.Errorf("cell (%d,%d) not fresh: %+v", i, j, *c)
			}
		}
	}
	if _, ok := g.Start(); ok {
		t.Error("fresh grid reports a start")
	}
	if _, ok := g.End(); ok {
		t.Error("fresh grid reports an end")
	}
}

// TestParse_Errors covers empty, ragged and unknown-glyph inputs.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		err  error
	}{
		{"Nil", nil, grid.ErrEmptyGrid},
		{"EmptyRow", []string{""}, grid.ErrEmptyGrid},
		{"Ragged", []string{"..", "."}, grid.ErrNonRectangular},
		{"BadGlyph", []string{".x"}, grid.ErrBadGlyph},
		{"TwoStarts", []string{"S.S"}, grid.ErrInvalidPlacement},
		{"TwoEnds", []string{"E.E"}, grid.ErrInvalidPlacement},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := grid.Parse(tc.rows); !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.rows, err, tc.err)
			}
		})
	}
}

// TestParse_RoundTrip checks that String reproduces the parsed glyphs.
func TestParse_RoundTrip(t *testing.T) {
	rows := []string{
		"S.#",
		".#.",
		"..E",
	}
	g, err := grid.Parse(rows)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got, want := g.String(), "S.#\n.#.\n..E\n"; got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
	start, _ := g.Start()
	end, _ := g.End()
	if start != (grid.Coord{I: 0, J: 0}) || end != (grid.Coord{I: 2, J: 2}) {
		t.Errorf("start/end = %v/%v; want (0,0)/(2,2)", start, end)
	}
	want := []grid.Coord{{I: 0, J: 2}, {I: 1, J: 1}}
	if got := g.Obstacles(); !reflect.DeepEqual(got, want) {
		t.Errorf("Obstacles() = %v; want %v", got, want)
	}
}

// TestInBounds checks InBounds and the nil result of Cell outside the grid.
func TestInBounds(t *testing.T) {
	g, _ := grid.NewGrid(2, 3)
	valid := [][2]int{{0, 0}, {1, 2}, {1, 1}}
	for _, ij := range valid {
		if !g.InBounds(ij[0], ij[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", ij[0], ij[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {2, 0}, {0, 3}, {1, -1}}
	for _, ij := range invalid {
		if g.InBounds(ij[0], ij[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", ij[0], ij[1])
		}
		if g.Cell(ij[0], ij[1]) != nil {
			t.Errorf("Cell(%d,%d) != nil", ij[0], ij[1])
		}
	}
}

// TestIndexCoordinate verifies the row-major bijection.
func TestIndexCoordinate(t *testing.T) {
	g, _ := grid.NewGrid(4, 5)
	for idx := 0; idx < g.Len(); idx++ {
		c := g.Coordinate(idx)
		if back := g.Index(c); back != idx {
			t.Errorf("Index(Coordinate(%d)) = %d", idx, back)
		}
		if g.CellAt(idx) != g.At(c) {
			t.Errorf("CellAt(%d) and At(%v) differ", idx, c)
		}
	}
}

//----------------------------------------------------------------------------//
// Neighbour and cost Tests
//----------------------------------------------------------------------------//

// TestNeighbours_RowMajor checks the fixed enumeration order around a centre cell.
func TestNeighbours_RowMajor(t *testing.T) {
	g, _ := grid.NewGrid(3, 3)
	got := g.Neighbours(grid.Coord{I: 1, J: 1})
	want := []grid.Coord{
		{I: 0, J: 0}, {I: 0, J: 1}, {I: 0, J: 2},
		{I: 1, J: 0}, {I: 1, J: 2},
		{I: 2, J: 0}, {I: 2, J: 1}, {I: 2, J: 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbours((1,1)) = %v; want %v", got, want)
	}
}

// TestNeighbours_CornerAndObstacles verifies clipping at borders and obstacle exclusion.
func TestNeighbours_CornerAndObstacles(t *testing.T) {
	g, _ := grid.Parse([]string{
		".#.",
		"...",
		"...",
	})
	got := g.Neighbours(grid.Coord{I: 0, J: 0})
	want := []grid.Coord{{I: 1, J: 0}, {I: 1, J: 1}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Neighbours((0,0)) = %v; want %v", got, want)
	}
	if n := g.Neighbours(grid.Coord{I: 5, J: 5}); n != nil {
		t.Errorf("Neighbours out of bounds = %v; want nil", n)
	}
}

// TestNeighbours_Chebyshev asserts every neighbour is at Chebyshev distance 1.
func TestNeighbours_Chebyshev(t *testing.T) {
	g, _ := grid.NewGrid(4, 4)
	for idx := 0; idx < g.Len(); idx++ {
		c := g.Coordinate(idx)
		for _, n := range g.Neighbours(c) {
			if d := grid.Chebyshev(c, n); d != 1 {
				t.Errorf("Chebyshev(%v,%v) = %d; want 1", c, n, d)
			}
		}
	}
}

// TestCosts pins orthogonal, diagonal and heuristic values.
func TestCosts(t *testing.T) {
	a := grid.Coord{I: 0, J: 0}
	if got := grid.EdgeCost(a, grid.Coord{I: 0, J: 1}); got != 1 {
		t.Errorf("orthogonal EdgeCost = %v; want 1", got)
	}
	if got := grid.EdgeCost(a, grid.Coord{I: 1, J: 1}); math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("diagonal EdgeCost = %v; want √2", got)
	}
	b := grid.Coord{I: 3, J: 4}
	if got := grid.Euclidean(a, b); got != 5 {
		t.Errorf("Euclidean = %v; want 5", got)
	}
	if got := grid.Manhattan(a, b); got != 7 {
		t.Errorf("Manhattan = %v; want 7", got)
	}
	if got := grid.Chebyshev(a, b); got != 4 {
		t.Errorf("Chebyshev = %v; want 4", got)
	}
}

// TestCellEqual documents that equality is by coordinate, not by bookkeeping.
func TestCellEqual(t *testing.T) {
	g, _ := grid.NewGrid(2, 2)
	snap1 := *g.Cell(1, 1)
	g.Cell(1, 1).G = 42
	g.Cell(1, 1).Pred = 0
	snap2 := *g.Cell(1, 1)
	if !snap1.Equal(snap2) {
		t.Error("snapshots of one cell must compare equal")
	}
	if snap1.Equal(*g.Cell(0, 1)) {
		t.Error("distinct cells must not compare equal")
	}
}

//----------------------------------------------------------------------------//
// Reset / ClearSearch Tests
//----------------------------------------------------------------------------//

// TestClearSearch_KeepsRoles checks that only bookkeeping is wiped.
func TestClearSearch_KeepsRoles(t *testing.T) {
	g, _ := grid.Parse([]string{"S#E"})
	c := g.Cell(0, 0)
	c.G, c.H, c.F, c.Pred, c.State, c.OnPath = 1, 2, 3, 2, grid.Closed, true

	g.ClearSearch()
	if c.G != 0 || c.H != 0 || c.F != 0 || c.Pred != grid.NoPred || c.State != grid.Unseen || c.OnPath {
		t.Errorf("bookkeeping not cleared: %+v", *c)
	}
	if !c.Start || !g.Cell(0, 1).Obstacle || !g.Cell(0, 2).End {
		t.Error("ClearSearch must keep roles")
	}
}

// TestReset_ClearsEverything checks that Reset recreates all cells.
func TestReset_ClearsEverything(t *testing.T) {
	g, _ := grid.Parse([]string{"S#E"})
	g.Reset()
	if got := g.String(); got != "...\n" {
		t.Errorf("after Reset String() = %q; want %q", got, "...\n")
	}
	if _, ok := g.Start(); ok {
		t.Error("start survived Reset")
	}
	if _, ok := g.End(); ok {
		t.Error("end survived Reset")
	}
}

// TestEpisode_Advances checks that ClearSearch and Reset both start a new episode.
func TestEpisode_Advances(t *testing.T) {
	g, _ := grid.Parse([]string{"S.E"})
	e0 := g.Episode()
	g.ClearSearch()
	e1 := g.Episode()
	if e1 == e0 {
		t.Errorf("ClearSearch kept episode %d", e0)
	}
	g.Reset()
	if g.Episode() == e1 {
		t.Errorf("Reset kept episode %d", e1)
	}
}

package grid

import (
	"fmt"
	"strings"
)

// Grid owns a fixed height×width arena of cells.
// A Grid is not safe for concurrent use.
type Grid struct {
	height, width int
	cells         []Cell
	start, end    int // arena index or NoPred
	episode       uint64
}

// NewGrid constructs a height×width grid of free cells with no start or end.
// Returns ErrEmptyGrid unless both dimensions are positive.
// Complexity: O(H×W) time and memory.
func NewGrid(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, height, width)
	}
	g := &Grid{height: height, width: width}
	g.Reset()

	return g, nil
}

// Parse builds a grid from text rows using the glyphs
// '.' (free), '#' (obstacle), 'S' (start) and 'E' (end).
// Returns ErrEmptyGrid, ErrNonRectangular, ErrBadGlyph, or
// ErrInvalidPlacement when a second start or end is found.
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := NewGrid(len(rows), w)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		for j := 0; j < len(row); j++ {
			switch row[j] {
			case GlyphFree:
			case GlyphObstacle:
				err = g.SetObstacle(i, j)
			case GlyphStart:
				if _, ok := g.Start(); ok {
					return nil, fmt.Errorf("%w: second start at (%d,%d)", ErrInvalidPlacement, i, j)
				}
				err = g.SetStart(i, j)
			case GlyphEnd:
				if _, ok := g.End(); ok {
					return nil, fmt.Errorf("%w: second end at (%d,%d)", ErrInvalidPlacement, i, j)
				}
				err = g.SetEnd(i, j)
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadGlyph, row[j], i, j)
			}
			if err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// Reset recreates every cell: roles, obstacles and search state are all
// cleared. The dimensions are kept.
func (g *Grid) Reset() {
	g.cells = make([]Cell, g.height*g.width)
	for idx := range g.cells {
		g.cells[idx] = Cell{Coord: g.Coordinate(idx), Pred: NoPred}
	}
	g.start, g.end = NoPred, NoPred
	g.episode++
}

// ClearSearch zeroes the search bookkeeping of every cell (costs,
// predecessors, visit state, path flags) while keeping roles and obstacles.
// Searchers call it when an episode begins. Each call starts a new
// episode number.
func (g *Grid) ClearSearch() {
	for idx := range g.cells {
		g.cells[idx].resetSearch()
	}
	g.episode++
}

// Episode returns a counter bumped by every ClearSearch and Reset, so
// search results can tell whether the bookkeeping they read is still theirs.
func (g *Grid) Episode() uint64 { return g.episode }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether (i,j) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(i, j int) bool {
	return i >= 0 && i < g.height && j >= 0 && j < g.width
}

// Index maps c to its row-major arena index: i*Width + j.
// The caller must ensure c is in bounds.
func (g *Grid) Index(c Coord) int {
	return c.I*g.width + c.J
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{I: idx / g.width, J: idx % g.width}
}

// Cell returns the cell at (i,j), or nil when out of bounds.
func (g *Grid) Cell(i, j int) *Cell {
	if !g.InBounds(i, j) {
		return nil
	}
	return &g.cells[i*g.width+j]
}

// At returns the cell at c, or nil when out of bounds.
func (g *Grid) At(c Coord) *Cell {
	return g.Cell(c.I, c.J)
}

// CellAt returns the cell stored at arena index idx.
func (g *Grid) CellAt(idx int) *Cell {
	return &g.cells[idx]
}

// Start returns the start coordinate, if one is set.
func (g *Grid) Start() (Coord, bool) {
	if g.start == NoPred {
		return Coord{}, false
	}
	return g.Coordinate(g.start), true
}

// End returns the end coordinate, if one is set.
func (g *Grid) End() (Coord, bool) {
	if g.end == NoPred {
		return Coord{}, false
	}
	return g.Coordinate(g.end), true
}

// Obstacles lists obstacle coordinates in row-major order.
func (g *Grid) Obstacles() []Coord {
	return g.collect(func(c *Cell) bool { return c.Obstacle })
}

// Open lists frontier cells of the current episode in row-major order.
func (g *Grid) Open() []Coord {
	return g.collect(func(c *Cell) bool { return c.State == Open })
}

// Closed lists expanded cells of the current episode in row-major order.
func (g *Grid) Closed() []Coord {
	return g.collect(func(c *Cell) bool { return c.State == Closed })
}

// Path lists cells flagged OnPath in row-major order. For the ordered
// route use the search package's reconstruction.
func (g *Grid) Path() []Coord {
	return g.collect(func(c *Cell) bool { return c.OnPath })
}

func (g *Grid) collect(keep func(*Cell) bool) []Coord {
	var out []Coord
	for idx := range g.cells {
		if keep(&g.cells[idx]) {
			out = append(out, g.cells[idx].Coord)
		}
	}
	return out
}

// String renders the roles of the grid with the Parse glyphs, one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for i := 0; i < g.height; i++ {
		for j := 0; j < g.width; j++ {
			c := &g.cells[i*g.width+j]
			switch {
			case c.Start:
				sb.WriteByte(GlyphStart)
			case c.End:
				sb.WriteByte(GlyphEnd)
			case c.Obstacle:
				sb.WriteByte(GlyphObstacle)
			default:
				sb.WriteByte(GlyphFree)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

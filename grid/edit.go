package grid

import "fmt"

// SetStart marks (i,j) as the start cell, moving any previous start.
// Returns ErrInvalidPlacement if (i,j) is out of bounds, an obstacle, or the end.
func (g *Grid) SetStart(i, j int) error {
	idx, err := g.placeable(i, j, "start")
	if err != nil {
		return err
	}
	if g.cells[idx].End {
		return fmt.Errorf("%w: start on end cell (%d,%d)", ErrInvalidPlacement, i, j)
	}
	if g.start != NoPred {
		g.cells[g.start].Start = false
	}
	g.cells[idx].Start = true
	g.start = idx

	return nil
}

// SetEnd marks (i,j) as the end cell, moving any previous end.
// Returns ErrInvalidPlacement if (i,j) is out of bounds, an obstacle, or the start.
func (g *Grid) SetEnd(i, j int) error {
	idx, err := g.placeable(i, j, "end")
	if err != nil {
		return err
	}
	if g.cells[idx].Start {
		return fmt.Errorf("%w: end on start cell (%d,%d)", ErrInvalidPlacement, i, j)
	}
	if g.end != NoPred {
		g.cells[g.end].End = false
	}
	g.cells[idx].End = true
	g.end = idx

	return nil
}

// SetEndpoints places start and end in one call, moving any previous
// markers. Unlike SetStart and SetEnd it accepts start == end, a degenerate
// episode that succeeds immediately with a single-cell path.
// Returns ErrInvalidPlacement if either cell is out of bounds or an obstacle;
// the grid is unchanged on error.
func (g *Grid) SetEndpoints(start, end Coord) error {
	si, err := g.placeable(start.I, start.J, "start")
	if err != nil {
		return err
	}
	ei, err := g.placeable(end.I, end.J, "end")
	if err != nil {
		return err
	}
	if g.start != NoPred {
		g.cells[g.start].Start = false
	}
	if g.end != NoPred {
		g.cells[g.end].End = false
	}
	g.cells[si].Start, g.cells[ei].End = true, true
	g.start, g.end = si, ei

	return nil
}

// SetObstacle marks (i,j) as an obstacle. Marking an obstacle twice is a no-op.
// Returns ErrInvalidPlacement if (i,j) is out of bounds, the start, or the end.
func (g *Grid) SetObstacle(i, j int) error {
	if !g.InBounds(i, j) {
		return fmt.Errorf("%w: obstacle (%d,%d) out of bounds", ErrInvalidPlacement, i, j)
	}
	c := &g.cells[i*g.width+j]
	if c.Start || c.End {
		return fmt.Errorf("%w: obstacle on start/end cell (%d,%d)", ErrInvalidPlacement, i, j)
	}
	c.Obstacle = true

	return nil
}

// ClearCell removes every role from (i,j), turning it back into a free cell.
// Returns ErrInvalidPlacement if (i,j) is out of bounds.
func (g *Grid) ClearCell(i, j int) error {
	if !g.InBounds(i, j) {
		return fmt.Errorf("%w: clear (%d,%d) out of bounds", ErrInvalidPlacement, i, j)
	}
	idx := i*g.width + j
	c := &g.cells[idx]
	if c.Start {
		g.start = NoPred
	}
	if c.End {
		g.end = NoPred
	}
	c.Start, c.End, c.Obstacle = false, false, false

	return nil
}

// ApplyMask sets Obstacle wherever mask is true. The mask must have exactly
// Height rows of Width columns (ErrMalformedMask) and may not cover the
// start or end cell (ErrInvalidPlacement). The grid is left unchanged when
// an error is returned.
func (g *Grid) ApplyMask(mask [][]bool) error {
	if len(mask) != g.height {
		return fmt.Errorf("%w: %d rows, want %d", ErrMalformedMask, len(mask), g.height)
	}
	for i, row := range mask {
		if len(row) != g.width {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrMalformedMask, i, len(row), g.width)
		}
		for j, blocked := range row {
			c := &g.cells[i*g.width+j]
			if blocked && (c.Start || c.End) {
				return fmt.Errorf("%w: mask covers start/end cell (%d,%d)", ErrInvalidPlacement, i, j)
			}
		}
	}
	for i, row := range mask {
		for j, blocked := range row {
			if blocked {
				g.cells[i*g.width+j].Obstacle = true
			}
		}
	}

	return nil
}

// placeable validates bounds and obstacle conflicts shared by SetStart and SetEnd.
func (g *Grid) placeable(i, j int, role string) (int, error) {
	if !g.InBounds(i, j) {
		return 0, fmt.Errorf("%w: %s (%d,%d) out of bounds", ErrInvalidPlacement, role, i, j)
	}
	idx := i*g.width + j
	if g.cells[idx].Obstacle {
		return 0, fmt.Errorf("%w: %s on obstacle (%d,%d)", ErrInvalidPlacement, role, i, j)
	}
	return idx, nil
}

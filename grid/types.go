package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns was requested.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadGlyph indicates an unknown rune in a textual grid.
	ErrBadGlyph = errors.New("grid: unknown glyph")
	// ErrInvalidPlacement indicates an edit targeted an out-of-bounds cell
	// or a cell already holding a conflicting role.
	ErrInvalidPlacement = errors.New("grid: invalid placement")
	// ErrMalformedMask indicates an obstacle mask whose dimensions differ from the grid.
	ErrMalformedMask = errors.New("grid: mask dimensions do not match grid")
)

// NoPred marks a cell without predecessor.
const NoPred = -1

// Glyphs understood by Parse and produced by String.
const (
	GlyphFree     = '.'
	GlyphObstacle = '#'
	GlyphStart    = 'S'
	GlyphEnd      = 'E'
)

// Coord addresses a cell by row I and column J (0-indexed).
// Coord is comparable; two cells are the same cell iff their Coords are equal.
type Coord struct {
	I, J int
}

// String renders the coordinate as "(i,j)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.I, c.J)
}

// State is the visit classification of a cell within one search episode.
type State uint8

const (
	// Unseen cells have not been discovered yet.
	Unseen State = iota
	// Open cells sit in the frontier.
	Open
	// Closed cells have been expanded.
	Closed
)

// String returns a short lowercase name of the state.
func (s State) String() string {
	switch s {
	case Unseen:
		return "unseen"
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// Cell is a single grid position.
//
// G, H and F hold the search bookkeeping of the current episode:
// G is the cost from start, H the heuristic estimate to end and F the
// priority key of the algorithm in flight. Pred is the arena index of the
// predecessor cell, or NoPred.
//
// Start, End, Obstacle and OnPath are role flags. Start and End are never
// set on an Obstacle cell.
type Cell struct {
	Coord

	G, H, F float64
	Pred    int
	State   State

	Start    bool
	End      bool
	Obstacle bool
	OnPath   bool
}

// Equal reports whether c and o address the same grid position.
// Bookkeeping fields are ignored: two snapshots of one cell taken at
// different moments of a search compare equal.
func (c Cell) Equal(o Cell) bool {
	return c.Coord == o.Coord
}

// Passable reports whether a search may enter the cell.
func (c *Cell) Passable() bool {
	return !c.Obstacle
}

// resetSearch clears per-episode bookkeeping while keeping roles.
func (c *Cell) resetSearch() {
	c.G, c.H, c.F = 0, 0, 0
	c.Pred = NoPred
	c.State = Unseen
	c.OnPath = false
}

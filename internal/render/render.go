// Package render draws a grid and its search state as ASCII art.
//
//	S start    E end    # obstacle
//	* on path  o open   x closed    . free
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Glyphs for the search state, in addition to the grid glyphs.
const (
	GlyphPath   = '*'
	GlyphOpen   = 'o'
	GlyphClosed = 'x'
)

// Glyph returns the character drawn for c. Roles win over search state,
// and the path wins over open/closed.
func Glyph(c *grid.Cell) byte {
	switch {
	case c.Start:
		return grid.GlyphStart
	case c.End:
		return grid.GlyphEnd
	case c.Obstacle:
		return grid.GlyphObstacle
	case c.OnPath:
		return GlyphPath
	case c.State == grid.Closed:
		return GlyphClosed
	case c.State == grid.Open:
		return GlyphOpen
	default:
		return grid.GlyphFree
	}
}

// String renders g one row per line.
func String(g *grid.Grid) string {
	var sb strings.Builder
	sb.Grow((g.Width() + 1) * g.Height())
	for i := 0; i < g.Height(); i++ {
		for j := 0; j < g.Width(); j++ {
			sb.WriteByte(Glyph(g.Cell(i, j)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Write renders g to w.
func Write(w io.Writer, g *grid.Grid) error {
	_, err := io.WriteString(w, String(g))
	return err
}

// Summary describes the outcome of a search in one line.
func Summary(kind search.Kind, st search.Status, expanded int, p search.Path) string {
	if st != search.Found {
		return fmt.Sprintf("%s: %s after %d expansions", kind.Title(), st, expanded)
	}
	return fmt.Sprintf("%s: %s after %d expansions, %d edges, cost %.3f",
		kind.Title(), st, expanded, p.Edges(), p.Cost)
}

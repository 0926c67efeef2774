package gridpath

import (
	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// Solve parses rows with the grid glyphs ('.', '#', 'S', 'E'), runs kind to
// completion and returns the path when one exists. An unreachable end
// yields search.Exhausted and an empty Path, not an error.
func Solve(rows []string, kind search.Kind) (search.Status, search.Path, error) {
	g, err := grid.Parse(rows)
	if err != nil {
		return search.Exhausted, search.Path{}, err
	}
	st, w, err := search.Run(g, kind)
	if err != nil || st != search.Found {
		return st, search.Path{}, err
	}
	return st, search.Reconstruct(w), nil
}

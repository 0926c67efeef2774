// Package scenario loads search scenarios from HCL files (or JSON bodies)
// and builds the grids they describe.
//
// An HCL scenario looks like:
//
//	height    = 5
//	width     = 7
//	algorithm = "astar"
//	start     = [0, 0]
//	end       = [4, 6]
//	obstacles = [[1, 1], [2, 1]]
//	maze {
//	  seed = 7
//	}
//
// Instead of height and width, rows may give the board as text using the
// grid glyphs ('.', '#', 'S', 'E').
package scenario

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/maze"
)

// ErrInvalidScenario is returned when a decoded scenario cannot describe a grid.
var ErrInvalidScenario = errors.New("scenario: invalid scenario")

// Scenario describes one search episode: the board, its endpoints and
// the algorithm name (mapped to a search kind by the cli package).
type Scenario struct {
	Height    int      `hcl:"height,optional" json:"height,omitempty"`
	Width     int      `hcl:"width,optional" json:"width,omitempty"`
	Algorithm string   `hcl:"algorithm,optional" json:"algorithm,omitempty"`
	Start     []int    `hcl:"start,optional" json:"start,omitempty"`
	End       []int    `hcl:"end,optional" json:"end,omitempty"`
	Obstacles [][]int  `hcl:"obstacles,optional" json:"obstacles,omitempty"`
	Rows      []string `hcl:"rows,optional" json:"rows,omitempty"`
	Maze      *Maze    `hcl:"maze,block" json:"maze,omitempty"`
}

// Maze asks for a generated maze overlay.
type Maze struct {
	Seed int64 `hcl:"seed,optional" json:"seed"`
}

// Load parses the HCL scenario file at path.
func Load(path string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return decode(file.Body, path)
}

// Parse parses an HCL scenario held in memory; filename is used in
// diagnostics only.
func Parse(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decode(file.Body, filename)
}

// decode maps an HCL body onto a Scenario.
func decode(body hcl.Body, filename string) (*Scenario, error) {
	var sc Scenario
	if diags := gohcl.DecodeBody(body, nil, &sc); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	return &sc, nil
}

// Build creates the grid the scenario describes:
//  1. the base board from rows, or a blank height×width grid;
//  2. the listed obstacles;
//  3. start and end (attributes override markers found in rows);
//  4. the maze overlay, with the start and end cells kept open.
//
// Every failure wraps ErrInvalidScenario or a grid sentinel error.
func (s *Scenario) Build() (*grid.Grid, error) {
	g, err := s.base()
	if err != nil {
		return nil, err
	}

	for k, o := range s.Obstacles {
		c, err := coord(o, fmt.Sprintf("obstacles[%d]", k))
		if err != nil {
			return nil, err
		}
		if err := g.SetObstacle(c.I, c.J); err != nil {
			return nil, err
		}
	}

	start, end, err := s.endpoints(g)
	if err != nil {
		return nil, err
	}
	if err := g.SetEndpoints(start, end); err != nil {
		return nil, err
	}

	if s.Maze != nil {
		mask, err := maze.Generate(g.Height(), g.Width(), rand.New(rand.NewSource(s.Maze.Seed)))
		if err != nil {
			return nil, err
		}
		maze.Clear(mask, start, end)
		if err := g.ApplyMask(mask); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// base builds the board before obstacles and endpoints are applied.
func (s *Scenario) base() (*grid.Grid, error) {
	if len(s.Rows) == 0 {
		if s.Height <= 0 || s.Width <= 0 {
			return nil, fmt.Errorf("%w: height and width must be positive, got %dx%d", ErrInvalidScenario, s.Height, s.Width)
		}
		return grid.NewGrid(s.Height, s.Width)
	}

	g, err := grid.Parse(s.Rows)
	if err != nil {
		return nil, err
	}
	if (s.Height != 0 && s.Height != g.Height()) || (s.Width != 0 && s.Width != g.Width()) {
		return nil, fmt.Errorf("%w: rows are %dx%d but height/width say %dx%d",
			ErrInvalidScenario, g.Height(), g.Width(), s.Height, s.Width)
	}
	return g, nil
}

// endpoints resolves start and end from attributes, falling back to the
// markers already on g.
func (s *Scenario) endpoints(g *grid.Grid) (grid.Coord, grid.Coord, error) {
	start, okStart := g.Start()
	end, okEnd := g.End()

	if s.Start != nil {
		c, err := coord(s.Start, "start")
		if err != nil {
			return start, end, err
		}
		start, okStart = c, true
	}
	if s.End != nil {
		c, err := coord(s.End, "end")
		if err != nil {
			return start, end, err
		}
		end, okEnd = c, true
	}

	switch {
	case !okStart:
		return start, end, fmt.Errorf("%w: missing start", ErrInvalidScenario)
	case !okEnd:
		return start, end, fmt.Errorf("%w: missing end", ErrInvalidScenario)
	}
	return start, end, nil
}

// coord converts a two-element [row, column] list.
func coord(v []int, name string) (grid.Coord, error) {
	if len(v) != 2 {
		return grid.Coord{}, fmt.Errorf("%w: %s must be [row, column], got %v", ErrInvalidScenario, name, v)
	}
	return grid.Coord{I: v[0], J: v[1]}, nil
}

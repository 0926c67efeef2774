/*
Package maze generates obstacle masks for grid.Grid.ApplyMask.

Masks are carved with Wilson's algorithm: rooms sit on even (row, column)
positions, every other cell starts as wall, and loop-erased random walks
open the walls between rooms until all rooms form one spanning tree. The
result is a uniform random perfect maze over the rooms.

A seeded *rand.Rand makes generation reproducible.
*/
package maze

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrInvalidDimensions is returned for non-positive mask sizes.
var ErrInvalidDimensions = errors.New("maze: invalid dimensions")

// directions between rooms, fixed so a seed always yields the same maze.
var directions = [4][2]int{{-1, 0}, {1, 0}, {0, 1}, {0, -1}} // north, south, east, west

// Maze is a carved obstacle mask together with its room lattice.
type Maze struct {
	Height, Width int      // mask dimensions
	Rows, Cols    int      // room lattice dimensions
	Mask          [][]bool // true marks a wall
}

// New carves a maze filling a height×width mask.
func New(height, width int, r *rand.Rand) (*Maze, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, height, width)
	}

	m := &Maze{
		Height: height,
		Width:  width,
		Rows:   (height + 1) / 2,
		Cols:   (width + 1) / 2,
		Mask:   make([][]bool, height),
	}
	for i := range m.Mask {
		m.Mask[i] = make([]bool, width)
		for j := range m.Mask[i] {
			m.Mask[i][j] = true
		}
	}
	m.generate(r)

	return m, nil
}

// Generate is New returning only the mask.
func Generate(height, width int, r *rand.Rand) ([][]bool, error) {
	m, err := New(height, width, r)
	if err != nil {
		return nil, err
	}
	return m.Mask, nil
}

// Clear opens the given cells in mask, typically the start and end, so
// that ApplyMask accepts it. Out-of-range cells are ignored.
func Clear(mask [][]bool, cells ...grid.Coord) {
	for _, c := range cells {
		if c.I >= 0 && c.I < len(mask) && c.J >= 0 && c.J < len(mask[c.I]) {
			mask[c.I][c.J] = false
		}
	}
}

// Room returns the mask coordinate of room (row, col).
func (m *Maze) Room(row, col int) grid.Coord {
	return grid.Coord{I: 2 * row, J: 2 * col}
}

// rooms returns the number of rooms.
func (m *Maze) rooms() int { return m.Rows * m.Cols }

// neighbors lists the rooms adjacent to room id in directions order.
func (m *Maze) neighbors(id int, dst []int) []int {
	row, col := id/m.Cols, id%m.Cols
	for _, d := range directions {
		nr, nc := row+d[0], col+d[1]
		if nr >= 0 && nr < m.Rows && nc >= 0 && nc < m.Cols {
			dst = append(dst, nr*m.Cols+nc)
		}
	}
	return dst
}

// openWall frees both rooms and the wall cell between them.
func (m *Maze) openWall(from, to int) {
	a := m.Room(from/m.Cols, from%m.Cols)
	b := m.Room(to/m.Cols, to%m.Cols)
	m.Mask[a.I][a.J] = false
	m.Mask[b.I][b.J] = false
	m.Mask[(a.I+b.I)/2][(a.J+b.J)/2] = false
}

// randomWalk walks from a random unvisited room until it hits the tree.
// Revisiting a room overwrites its exit, which erases the loop.
func (m *Maze) randomWalk(r *rand.Rand, visited []bool) (int, map[int]int) {
	start := r.Intn(m.rooms())
	for visited[start] {
		start = r.Intn(m.rooms())
	}

	exits := make(map[int]int)
	buf := make([]int, 0, len(directions))
	for cell := start; !visited[cell]; {
		buf = m.neighbors(cell, buf[:0])
		next := buf[r.Intn(len(buf))]
		exits[cell] = next
		cell = next
	}

	return start, exits
}

// generate runs Wilson's algorithm over the room lattice.
func (m *Maze) generate(r *rand.Rand) {
	visited := make([]bool, m.rooms())
	root := r.Intn(m.rooms())
	visited[root] = true
	rc := m.Room(root/m.Cols, root%m.Cols)
	m.Mask[rc.I][rc.J] = false

	for remaining := m.rooms() - 1; remaining > 0; {
		start, exits := m.randomWalk(r, visited)
		for cell := start; !visited[cell]; cell = exits[cell] {
			visited[cell] = true
			remaining--
			m.openWall(cell, exits[cell])
		}
	}
}

// String draws the mask with '#' for walls and '.' for open cells.
func (m *Maze) String() string {
	b := make([]byte, 0, m.Height*(m.Width+1))
	for i, row := range m.Mask {
		if i > 0 {
			b = append(b, '\n')
		}
		for _, wall := range row {
			if wall {
				b = append(b, grid.GlyphObstacle)
			} else {
				b = append(b, grid.GlyphFree)
			}
		}
	}
	return string(b)
}

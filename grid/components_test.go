// File: grid/components_test.go
package grid

import (
	"reflect"
	"sort"
	"testing"
)

// TestReachable_Wall checks that a full wall column splits the grid.
//
// Grid:
//
//	S # .
//	. # .
//	. # E
//
// Expected: 3 reachable cells from the start, none on the far side.
func TestReachable_Wall(t *testing.T) {
	g, err := Parse([]string{
		"S#.",
		".#.",
		".#E",
	})
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	got := g.Reachable(Coord{0, 0})
	want := []Coord{{0, 0}, {1, 0}, {2, 0}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reachable = %v; want %v", got, want)
	}
	if g.Connected(Coord{0, 0}, Coord{2, 2}) {
		t.Error("Connected across a full wall")
	}
}

// TestReachable_DiagonalGap shows that corner-touching cells connect under 8-connectivity.
func TestReachable_DiagonalGap(t *testing.T) {
	g, _ := Parse([]string{
		".#",
		"#.",
	})
	if !g.Connected(Coord{0, 0}, Coord{1, 1}) {
		t.Error("diagonal cells must be connected")
	}
}

// TestReachable_InvalidOrigin returns nil for obstacles and out-of-bounds origins.
func TestReachable_InvalidOrigin(t *testing.T) {
	g, _ := Parse([]string{"#."})
	if r := g.Reachable(Coord{0, 0}); r != nil {
		t.Errorf("obstacle origin: got %v; want nil", r)
	}
	if r := g.Reachable(Coord{3, 3}); r != nil {
		t.Errorf("out-of-bounds origin: got %v; want nil", r)
	}
}

// TestRegions counts islands separated by obstacles.
//
// Grid:
//
//	. . # .
//	# # # .
//	. # # #
//
// Expected: 3 regions of sizes 1, 2 and 2.
func TestRegions(t *testing.T) {
	g, _ := Parse([]string{
		"..#.",
		"###.",
		".###",
	})
	regions := g.Regions()
	if len(regions) != 3 {
		t.Fatalf("got %d regions; want 3", len(regions))
	}
	sizes := make([]int, len(regions))
	for k, r := range regions {
		sizes[k] = len(r)
	}
	sort.Ints(sizes)
	if want := []int{1, 2, 2}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("region sizes = %v; want %v", sizes, want)
	}
}

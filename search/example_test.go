// File: search/example_test.go
package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Run + Reconstruct
////////////////////////////////////////////////////////////////////////////////

// ExampleRun finds the diagonal across an open 3×3 grid.
func ExampleRun() {
	g, _ := grid.Parse([]string{
		"S..",
		"...",
		"..E",
	})
	st, w, err := search.Run(g, search.AStar)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(st)
	fmt.Println(search.Reconstruct(w))
	// Output:
	// found
	// (0,0) -> (1,1) -> (2,2) [cost=2.828]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Step
////////////////////////////////////////////////////////////////////////////////

// ExampleSearcher_Step drives BFS one expansion at a time.
// Scenario:
//
//   - 1×4 corridor, start on the left, end on the right.
//   - Each Step closes exactly one cell.
func ExampleSearcher_Step() {
	g, _ := grid.Parse([]string{"S..E"})
	s, _ := search.New(g, search.BFS)
	for {
		st := s.Step()
		cur, _ := s.Current()
		fmt.Println(cur, st)
		if st.Done() {
			break
		}
	}
	// Output:
	// (0,0) continue
	// (0,1) continue
	// (0,2) continue
	// (0,3) found
}

////////////////////////////////////////////////////////////////////////////////
// Example: no path
////////////////////////////////////////////////////////////////////////////////

// ExampleRun_exhausted shows that an unreachable end is a status, not an error.
func ExampleRun_exhausted() {
	g, _ := grid.Parse([]string{
		"S#.",
		".#.",
		".#E",
	})
	st, w, err := search.Run(g, search.Dijkstra)
	fmt.Println(st, w == nil, err)
	// Output:
	// exhausted true <nil>
}

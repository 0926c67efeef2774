// Package gridpath finds paths across 8-connected grids with A*, Dijkstra,
// Greedy best-first, BFS and DFS, and lets callers watch the search one
// expansion at a time.
//
// 🚀 What is gridpath?
//
//	A small, single-threaded search engine built from three packages:
//		• grid    : cells, roles (start/end/obstacle), neighbours, costs
//		• frontier: indexed heap with decrease-key, lazy heap, queue, stack, bitset
//		• search  : the five algorithms behind one Step / Run API
//
// ✨ Why gridpath?
//
//   - Step mode – Step expands one cell; redraw between calls, stop any time.
//   - Safe paths – Reconstruct only accepts the Witness of a found search.
//   - Honest guarantees – A* and Dijkstra are cost-optimal, BFS takes the
//     fewest edges, Greedy and DFS promise nothing.
//   - Deterministic – neighbours in row-major order, FIFO tie-breaking.
//
// Around the core live the tools in cmd/gridpath: HCL scenarios, Wilson
// maze masks, an ASCII renderer and an HTTP step server.
//
// Quick ASCII example:
//
//	S . #        S . #
//	. . #   →    . * #
//	. . E        . . E
//
// A* crosses the diagonal at cost 2√2.
//
//	go get github.com/katalvlaran/gridpath
package gridpath

// Package grid treats a rectangular board of cells as an 8-connected graph,
// the data model shared by every path-finding algorithm in gridpath.
//
// What:
//
//   - Grid owns a fixed Height×Width arena of Cell values, addressed by
//     Coord{I, J} (row, column) or by row-major index.
//   - Cells carry role flags (Start, End, Obstacle, OnPath) and per-episode
//     search bookkeeping (G, H, F, Pred, State).
//   - Neighbours enumerates up to eight passable cells in row-major order.
//   - EdgeCost, Euclidean, Manhattan and Chebyshev supply costs and heuristics.
//   - Reachable and Regions flood-fill passable cells.
//
// Editing:
//
//   - SetStart / SetEnd move the single start or end marker.
//   - SetObstacle / ClearCell toggle obstacles.
//   - ApplyMask overlays an externally generated obstacle mask atomically.
//
// Lifecycle:
//
//   - Reset recreates every cell (roles included).
//   - ClearSearch wipes only search bookkeeping; searchers call it when an
//     episode starts so a grid can be searched repeatedly.
//
// Errors:
//
//   - ErrEmptyGrid: non-positive dimensions or empty text.
//   - ErrNonRectangular: ragged text rows.
//   - ErrBadGlyph: unknown rune in text rows.
//   - ErrInvalidPlacement: out-of-bounds edit or role conflict.
//   - ErrMalformedMask: mask dimensions differ from the grid.
//
// Complexity:
//
//   - Neighbours:          O(1).
//   - Reachable, Regions:  O(H×W), Memory: O(H×W).
//
// A Grid is not safe for concurrent use.
package grid

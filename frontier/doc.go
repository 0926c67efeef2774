// Package frontier provides the open-set and closed-set containers that
// drive grid searches. Every container stores arena indices of cells, so
// membership is decided by cell coordinates, never by pointer identity.
//
// Containers:
//
//   - IndexedHeap: min-priority queue, one entry per index, decrease-key via
//     Update. Used by A* (key F) and Greedy (key H).
//   - LazyHeap:    min-priority queue that tolerates duplicate entries; the
//     caller skips stale ones on Pop. Used by Dijkstra.
//   - Queue:       FIFO of indices. Used by BFS.
//   - Stack:       LIFO of indices. Used by DFS.
//   - Set:         bitset membership. Closed set of every algorithm.
//
// Determinism:
//
//	Both heaps break key ties by insertion order (first pushed, first
//	popped). IndexedHeap.Update keeps the original insertion order of an
//	entry, so repeated runs over the same grid pop cells in the same order.
//
// Complexity:
//
//   - IndexedHeap / LazyHeap Push, Pop, Update: O(log n).
//   - Queue / Stack Push, Pop: amortised O(1).
//   - Set Add, Has: O(1); Len: O(n/64).
//
// None of the containers are safe for concurrent use.
package frontier

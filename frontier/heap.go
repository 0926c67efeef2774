package frontier

import "container/heap"

// entry is one heap slot: the arena index of a cell, its priority key and the
// insertion sequence number that breaks key ties first-in first-out.
type entry struct {
	idx int
	key float64
	seq uint64
}

// less orders entries by key, then by insertion order.
func less(a, b *entry) bool {
	if a.key != b.key {
		return a.key < b.key
	}
	return a.seq < b.seq
}

// IndexedHeap is a min-priority queue over cell indices in [0, n) that holds
// each index at most once and supports decrease-key. A* and Greedy use it.
type IndexedHeap struct {
	items entries
	seq   uint64
}

// NewIndexedHeap returns an empty heap able to hold indices 0..n-1.
func NewIndexedHeap(n int) *IndexedHeap {
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}
	return &IndexedHeap{items: entries{pos: pos}}
}

// Len returns the number of queued indices.
func (h *IndexedHeap) Len() int { return len(h.items.list) }

// Contains reports whether idx is currently queued.
func (h *IndexedHeap) Contains(idx int) bool { return h.items.pos[idx] >= 0 }

// Key returns the current key of idx and whether idx is queued.
func (h *IndexedHeap) Key(idx int) (float64, bool) {
	p := h.items.pos[idx]
	if p < 0 {
		return 0, false
	}
	return h.items.list[p].key, true
}

// Push queues idx with key. Pushing an index that is already queued
// behaves like Update.
func (h *IndexedHeap) Push(idx int, key float64) {
	if h.Contains(idx) {
		h.Update(idx, key)
		return
	}
	h.seq++
	heap.Push(&h.items, &entry{idx: idx, key: key, seq: h.seq})
}

// Update changes the key of a queued index in place and restores heap order.
// The original insertion sequence is kept, so a decreased key still loses
// ties against entries queued before it. Returns false if idx is not queued.
func (h *IndexedHeap) Update(idx int, key float64) bool {
	p := h.items.pos[idx]
	if p < 0 {
		return false
	}
	h.items.list[p].key = key
	heap.Fix(&h.items, p)
	return true
}

// Pop removes and returns the index with the smallest key.
// It panics on an empty heap.
func (h *IndexedHeap) Pop() (int, float64) {
	e := heap.Pop(&h.items).(*entry)
	return e.idx, e.key
}

// Peek returns the index with the smallest key without removing it.
func (h *IndexedHeap) Peek() (int, float64, bool) {
	if len(h.items.list) == 0 {
		return 0, 0, false
	}
	e := h.items.list[0]
	return e.idx, e.key, true
}

// Indices returns the queued indices in heap order (not sorted).
func (h *IndexedHeap) Indices() []int {
	out := make([]int, len(h.items.list))
	for k, e := range h.items.list {
		out[k] = e.idx
	}
	return out
}

// entries implements heap.Interface and mirrors positions into pos.
type entries struct {
	list []*entry
	pos  []int // index → heap position, -1 when absent
}

func (q entries) Len() int           { return len(q.list) }
func (q entries) Less(i, j int) bool { return less(q.list[i], q.list[j]) }
func (q entries) Swap(i, j int) {
	q.list[i], q.list[j] = q.list[j], q.list[i]
	q.pos[q.list[i].idx] = i
	q.pos[q.list[j].idx] = j
}

func (q *entries) Push(x any) {
	e := x.(*entry)
	q.pos[e.idx] = len(q.list)
	q.list = append(q.list, e)
}

func (q *entries) Pop() any {
	old := q.list
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	q.list = old[:n-1]
	q.pos[e.idx] = -1
	return e
}

// LazyHeap is a min-priority queue that accepts duplicate indices. Dijkstra
// pushes a fresh entry on every improvement and discards stale ones when
// they are popped ("lazy decrease-key").
type LazyHeap struct {
	items lazyEntries
	seq   uint64
}

// NewLazyHeap returns an empty heap with room for capacity entries.
func NewLazyHeap(capacity int) *LazyHeap {
	return &LazyHeap{items: make(lazyEntries, 0, capacity)}
}

// Len returns the number of entries, stale duplicates included.
func (h *LazyHeap) Len() int { return len(h.items) }

// Push adds an entry for idx with key.
func (h *LazyHeap) Push(idx int, key float64) {
	h.seq++
	heap.Push(&h.items, &entry{idx: idx, key: key, seq: h.seq})
}

// Pop removes and returns the entry with the smallest key.
// It panics on an empty heap.
func (h *LazyHeap) Pop() (int, float64) {
	e := heap.Pop(&h.items).(*entry)
	return e.idx, e.key
}

// lazyEntries is a plain min-heap of *entry.
type lazyEntries []*entry

func (q lazyEntries) Len() int           { return len(q) }
func (q lazyEntries) Less(i, j int) bool { return less(q[i], q[j]) }
func (q lazyEntries) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }

func (q *lazyEntries) Push(x any) { *q = append(*q, x.(*entry)) }

func (q *lazyEntries) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}

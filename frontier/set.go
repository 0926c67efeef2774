package frontier

import "github.com/bits-and-blooms/bitset"

// Set is a membership set over cell indices in [0, n), backed by a bitset.
// It serves as the closed (expanded) set of A*, Dijkstra and Greedy and as
// the visited/discovered set of BFS and DFS.
type Set struct {
	bits *bitset.BitSet
}

// NewSet returns an empty set for indices 0..n-1.
func NewSet(n int) *Set {
	return &Set{bits: bitset.New(uint(n))}
}

// Add inserts idx. Adding a member again is a no-op.
func (s *Set) Add(idx int) {
	s.bits.Set(uint(idx))
}

// Has reports whether idx is a member.
func (s *Set) Has(idx int) bool {
	return s.bits.Test(uint(idx))
}

// Len returns the number of members.
func (s *Set) Len() int {
	return int(s.bits.Count())
}

// Clear removes every member.
func (s *Set) Clear() {
	s.bits.ClearAll()
}

// Members lists members in ascending index order.
func (s *Set) Members() []int {
	out := make([]int, 0, s.Len())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

package frontier

// Queue is a first-in first-out queue of cell indices used by BFS.
// Popped slots are reclaimed when the queue drains past half its buffer.
type Queue struct {
	items []int
	head  int
}

// NewQueue returns an empty queue with room for capacity indices.
func NewQueue(capacity int) *Queue {
	return &Queue{items: make([]int, 0, capacity)}
}

// Len returns the number of queued indices.
func (q *Queue) Len() int { return len(q.items) - q.head }

// Push appends idx at the tail.
func (q *Queue) Push(idx int) {
	q.items = append(q.items, idx)
}

// Pop removes and returns the head index. It panics on an empty queue.
func (q *Queue) Pop() int {
	if q.Len() == 0 {
		panic("frontier: Pop on empty Queue")
	}
	idx := q.items[q.head]
	q.head++
	if q.head > len(q.items)/2 {
		n := copy(q.items, q.items[q.head:])
		q.items = q.items[:n]
		q.head = 0
	}
	return idx
}

// Indices returns the queued indices from head to tail.
func (q *Queue) Indices() []int {
	out := make([]int, q.Len())
	copy(out, q.items[q.head:])
	return out
}

// Stack is a last-in first-out stack of cell indices used by DFS.
type Stack struct {
	items []int
}

// NewStack returns an empty stack with room for capacity indices.
func NewStack(capacity int) *Stack {
	return &Stack{items: make([]int, 0, capacity)}
}

// Len returns the number of stacked indices.
func (s *Stack) Len() int { return len(s.items) }

// Push places idx on top.
func (s *Stack) Push(idx int) {
	s.items = append(s.items, idx)
}

// Pop removes and returns the top index. It panics on an empty stack.
func (s *Stack) Pop() int {
	n := len(s.items)
	if n == 0 {
		panic("frontier: Pop on empty Stack")
	}
	idx := s.items[n-1]
	s.items = s.items[:n-1]
	return idx
}

// Indices returns the stacked indices from bottom to top.
func (s *Stack) Indices() []int {
	out := make([]int, len(s.items))
	copy(out, s.items)
	return out
}

package search

import "github.com/katalvlaran/lvmaze/grid"

// frontier is the pending-expansion collection of an Engine.
type frontier interface {
	push(v grid.Vertex)
	pop() (grid.Vertex, bool)
	len() int
	snapshot() []grid.Vertex
}

func newFrontier(s Strategy) frontier {
	if s == BreadthFirst {
		return &queue{}
	}
	return &stack{}
}

// stack pops the most recently pushed vertex.
type stack struct {
	items []grid.Vertex
}

func (s *stack) push(v grid.Vertex) { s.items = append(s.items, v) }

func (s *stack) pop() (grid.Vertex, bool) {
	n := len(s.items)
	if n == 0 {
		return grid.Vertex{}, false
	}
	v := s.items[n-1]
	s.items = s.items[:n-1]
	return v, true
}

func (s *stack) len() int { return len(s.items) }

// snapshot lists the stack bottom to top.
func (s *stack) snapshot() []grid.Vertex {
	out := make([]grid.Vertex, len(s.items))
	copy(out, s.items)
	return out
}

// queue pops the oldest pushed vertex. head indexes the next item so
// dequeue is O(1); the backing array is compacted once half of it is dead.
type queue struct {
	items []grid.Vertex
	head  int
}

func (q *queue) push(v grid.Vertex) { q.items = append(q.items, v) }

func (q *queue) pop() (grid.Vertex, bool) {
	if q.head >= len(q.items) {
		return grid.Vertex{}, false
	}
	v := q.items[q.head]
	q.head++
	if q.head > 32 && q.head*2 >= len(q.items) {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return v, true
}

func (q *queue) len() int { return len(q.items) - q.head }

// snapshot lists the queue head to tail.
func (q *queue) snapshot() []grid.Vertex {
	out := make([]grid.Vertex, q.len())
	copy(out, q.items[q.head:])
	return out
}

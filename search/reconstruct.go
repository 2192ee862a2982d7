package search

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// Reconstructor rebuilds a goal-to-start path from a predecessor map,
// one vertex per Advance.
type Reconstructor struct {
	preds map[grid.Vertex]grid.Edge
	start grid.Vertex
	path  []grid.Vertex
	final bool
}

// NewReconstructor seeds the path with goal. preds is read, never written.
func NewReconstructor(preds map[grid.Vertex]grid.Edge, start, goal grid.Vertex) *Reconstructor {
	return &Reconstructor{
		preds: preds,
		start: start,
		path:  []grid.Vertex{goal},
	}
}

// Advance looks at the last path vertex: if it is the start the
// reconstruction becomes final, otherwise the other endpoint of its
// discovering edge is appended.
// Returns ErrReconstructionDone once final and ErrBrokenChain when a
// vertex has no usable predecessor.
func (r *Reconstructor) Advance() error {
	if r.final {
		return ErrReconstructionDone
	}
	cur := r.path[len(r.path)-1]
	if cur == r.start {
		r.final = true
		return nil
	}
	e, ok := r.preds[cur]
	if !ok {
		return fmt.Errorf("%w: no predecessor for %v", ErrBrokenChain, cur)
	}
	prev, ok := e.Other(cur)
	if !ok {
		return fmt.Errorf("%w: edge %v does not touch %v", ErrBrokenChain, e, cur)
	}
	r.path = append(r.path, prev)
	return nil
}

// Final reports whether the start has been reached.
func (r *Reconstructor) Final() bool { return r.final }

// Path returns a copy of the path, goal first.
func (r *Reconstructor) Path() []grid.Vertex {
	out := make([]grid.Vertex, len(r.path))
	copy(out, r.path)
	return out
}

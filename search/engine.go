package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
)

// Engine is one armed search over a maze. It exclusively owns its frontier,
// visited set and predecessor map; the maze itself is only read.
// An Engine is not safe for concurrent use.
type Engine struct {
	maze     *maze.Maze
	strategy Strategy
	start    grid.Vertex
	goal     grid.Vertex
	opts     Options

	state    State
	frontier frontier
	visited  []grid.Vertex
	seen     map[grid.Vertex]struct{}
	preds    map[grid.Vertex]grid.Edge
	recon    *Reconstructor

	steps  int
	wasted int
}

// New arms a search of m from start to goal using strategy s.
// Returns ErrMazeNil, ErrVertexOutOfBounds or ErrOptionViolation for bad input.
func New(m *maze.Maze, s Strategy, start, goal grid.Vertex, opts ...Option) (*Engine, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	g := m.Grid()
	for _, v := range []grid.Vertex{start, goal} {
		if !g.Contains(v) {
			return nil, fmt.Errorf("%w: %v in %dx%d", ErrVertexOutOfBounds, v, g.Width, g.Height)
		}
	}

	n := g.Len()
	e := &Engine{
		maze:     m,
		strategy: s,
		start:    start,
		goal:     goal,
		opts:     o,
		state:    Running,
		frontier: newFrontier(s),
		visited:  make([]grid.Vertex, 0, n),
		seen:     make(map[grid.Vertex]struct{}, n),
		preds:    make(map[grid.Vertex]grid.Edge, n),
	}
	e.frontier.push(start)
	return e, nil
}

// Advance performs exactly one expansion.
//
// Steps:
//  1. Pop next from the frontier (stack top or queue head).
//  2. If next is already visited, return: a wasted step.
//  3. If next is the goal, switch to GoalFound and arm reconstruction.
//  4. Otherwise push every maze neighbor of next, recording the discovering
//     edge only for neighbors that have no predecessor yet.
//  5. Append next to the visited set (steps 3 and 4).
//
// Returns ErrNotRunning outside Running and ErrFrontierExhausted if nothing
// is left to pop.
func (e *Engine) Advance() error {
	if e.state != Running {
		return fmt.Errorf("%w: %s engine is %s", ErrNotRunning, e.strategy, e.state)
	}
	next, ok := e.frontier.pop()
	if !ok {
		return fmt.Errorf("%w: %s after %d steps", ErrFrontierExhausted, e.strategy, e.steps)
	}
	e.steps++

	if _, done := e.seen[next]; done {
		e.wasted++
		return nil
	}

	if next == e.goal {
		e.state = GoalFound
		e.recon = NewReconstructor(e.preds, e.start, e.goal)
		e.opts.OnGoal(next)
	} else {
		for _, edge := range e.maze.Incident(next) {
			nbr, _ := edge.Other(next)
			e.frontier.push(nbr)
			if _, has := e.preds[nbr]; !has {
				e.preds[nbr] = edge
				e.opts.OnDiscover(nbr, edge)
			}
		}
	}

	e.seen[next] = struct{}{}
	e.visited = append(e.visited, next)
	e.opts.OnVisit(next)
	return nil
}

// AdvanceReconstruction extends the path by one vertex toward the start and
// switches to Done once the start has been reached.
// Returns ErrNotReconstructing outside GoalFound.
func (e *Engine) AdvanceReconstruction() error {
	if e.state != GoalFound {
		return fmt.Errorf("%w: %s engine is %s", ErrNotReconstructing, e.strategy, e.state)
	}
	if err := e.recon.Advance(); err != nil {
		return err
	}
	if e.recon.Final() {
		e.state = Done
	}
	return nil
}

// Step advances whichever phase is active: an expansion while Running, a
// reconstruction step while GoalFound. It is a no-op once Done.
func (e *Engine) Step() error {
	switch e.state {
	case Running:
		return e.Advance()
	case GoalFound:
		return e.AdvanceReconstruction()
	}
	return nil
}

// Solve steps the engine until Done, checking ctx before every step.
func (e *Engine) Solve(ctx context.Context) error {
	for e.state != Done {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := e.Step(); err != nil {
			return err
		}
	}
	return nil
}

// State returns the lifecycle state; a nil engine is Idle.
func (e *Engine) State() State {
	if e == nil {
		return Idle
	}
	return e.state
}

// Strategy returns the frontier discipline.
func (e *Engine) Strategy() Strategy { return e.strategy }

// Start returns the start vertex.
func (e *Engine) Start() grid.Vertex { return e.start }

// Goal returns the goal vertex.
func (e *Engine) Goal() grid.Vertex { return e.goal }

// Visited returns a copy of the visited set in expansion order.
func (e *Engine) Visited() []grid.Vertex {
	out := make([]grid.Vertex, len(e.visited))
	copy(out, e.visited)
	return out
}

// IsVisited reports whether v has been expanded.
func (e *Engine) IsVisited(v grid.Vertex) bool {
	_, ok := e.seen[v]
	return ok
}

// Frontier returns a copy of the pending vertices: bottom to top for a
// stack, head to tail for a queue.
func (e *Engine) Frontier() []grid.Vertex { return e.frontier.snapshot() }

// Predecessors returns a copy of the predecessor map.
func (e *Engine) Predecessors() map[grid.Vertex]grid.Edge {
	out := make(map[grid.Vertex]grid.Edge, len(e.preds))
	for k, v := range e.preds {
		out[k] = v
	}
	return out
}

// Path returns the goal-to-start path built so far; nil before GoalFound.
func (e *Engine) Path() []grid.Vertex {
	if e.recon == nil {
		return nil
	}
	return e.recon.Path()
}

// Steps counts Advance calls that popped a vertex, wasted ones included.
func (e *Engine) Steps() int { return e.steps }

// WastedSteps counts pops of already-visited vertices.
func (e *Engine) WastedSteps() int { return e.wasted }

// WrongMoves is the number of visited vertices that are not on the path.
func (e *Engine) WrongMoves() int {
	return len(e.visited) - len(e.Path())
}

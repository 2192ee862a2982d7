package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// Sentinel errors for search execution.
var (
	// ErrMazeNil is returned if a nil maze pointer is passed.
	ErrMazeNil = errors.New("search: maze is nil")

	// ErrVertexOutOfBounds is returned when start or goal lies outside the grid.
	ErrVertexOutOfBounds = errors.New("search: vertex out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrNotRunning is returned when Advance is called outside the Running state.
	ErrNotRunning = errors.New("search: engine is not running")

	// ErrFrontierExhausted is returned when the frontier is empty and the goal
	// was never found. On a connected maze this is a caller bug.
	ErrFrontierExhausted = errors.New("search: frontier exhausted before goal")

	// ErrNotReconstructing is returned when AdvanceReconstruction is called
	// outside the GoalFound state.
	ErrNotReconstructing = errors.New("search: engine is not reconstructing")

	// ErrBrokenChain is returned when a path vertex has no predecessor.
	ErrBrokenChain = errors.New("search: predecessor chain is broken")

	// ErrReconstructionDone is returned when a final Reconstructor is advanced.
	ErrReconstructionDone = errors.New("search: reconstruction already final")
)

// Strategy selects the frontier discipline.
type Strategy int

const (
	// DepthFirst expands the most recently discovered vertex (stack).
	DepthFirst Strategy = iota
	// BreadthFirst expands the oldest discovered vertex (FIFO queue).
	BreadthFirst
)

func (s Strategy) String() string {
	switch s {
	case DepthFirst:
		return "depth-first"
	case BreadthFirst:
		return "breadth-first"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// State tags the engine's position in its lifecycle.
type State int

const (
	// Idle: not armed.
	Idle State = iota
	// Running: accepting Advance calls.
	Running
	// GoalFound: goal reached, reconstruction pending.
	GoalFound
	// Done: path fully reconstructed.
	Done
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case GoalFound:
		return "goal-found"
	case Done:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Option configures an Engine via functional arguments.
type Option func(*Options)

// Options holds the hooks invoked while the engine advances.
type Options struct {
	// OnVisit is called when a vertex is appended to the visited set.
	OnVisit func(v grid.Vertex)

	// OnDiscover is called when a neighbor receives its first predecessor.
	OnDiscover func(v grid.Vertex, via grid.Edge)

	// OnGoal is called once, when the goal is popped.
	OnGoal func(v grid.Vertex)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnVisit:    func(grid.Vertex) {},
		OnDiscover: func(grid.Vertex, grid.Edge) {},
		OnGoal:     func(grid.Vertex) {},
	}
}

// WithOnVisit registers fn to run whenever a vertex is marked visited.
func WithOnVisit(fn func(v grid.Vertex)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil OnVisit hook", ErrOptionViolation)
			return
		}
		o.OnVisit = fn
	}
}

// WithOnDiscover registers fn to run on each first discovery.
func WithOnDiscover(fn func(v grid.Vertex, via grid.Edge)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil OnDiscover hook", ErrOptionViolation)
			return
		}
		o.OnDiscover = fn
	}
}

// WithOnGoal registers fn to run when the goal is found.
func WithOnGoal(fn func(v grid.Vertex)) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil OnGoal hook", ErrOptionViolation)
			return
		}
		o.OnGoal = fn
	}
}

// Package player validates and applies manual moves through a maze.
//
// A move is accepted only when a maze edge joins the current cell and its
// neighbor in the requested direction; grid adjacency alone is never enough.
// Blocked moves (wall or grid boundary) are silent no-ops.
//
// Reaching the goal sets the won flag and switches the navigator to replay:
// each AdvanceReplay pops one vertex off the move history onto the animator
// path, so the route is shown backward from the goal, one cell per tick.
package player

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
)

// Sentinel errors for navigator operations.
var (
	// ErrMazeNil is returned if a nil maze pointer is passed.
	ErrMazeNil = errors.New("player: maze is nil")

	// ErrVertexOutOfBounds is returned when start or goal lies outside the grid.
	ErrVertexOutOfBounds = errors.New("player: vertex out of bounds")

	// ErrNotReplaying is returned when AdvanceReplay is called outside Replaying.
	ErrNotReplaying = errors.New("player: not replaying")
)

// State tags the navigator's lifecycle.
type State int

const (
	// Exploring accepts moves.
	Exploring State = iota
	// Replaying moves history onto the animator, one vertex per tick.
	Replaying
	// Final means the replay has consumed the whole history.
	Final
)

func (s State) String() string {
	switch s {
	case Exploring:
		return "exploring"
	case Replaying:
		return "replaying"
	case Final:
		return "final"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Navigator tracks one manually steered agent. It exclusively owns its
// position and history; the maze is only read.
type Navigator struct {
	maze     *maze.Maze
	goal     grid.Vertex
	pos      grid.Vertex
	history  []grid.Vertex
	animator []grid.Vertex
	moves    int
	won      bool
	state    State
}

// New places a navigator at start with history [start].
func New(m *maze.Maze, start, goal grid.Vertex) (*Navigator, error) {
	if m == nil {
		return nil, ErrMazeNil
	}
	g := m.Grid()
	for _, v := range []grid.Vertex{start, goal} {
		if !g.Contains(v) {
			return nil, fmt.Errorf("%w: %v in %dx%d", ErrVertexOutOfBounds, v, g.Width, g.Height)
		}
	}
	return &Navigator{
		maze:    m,
		goal:    goal,
		pos:     start,
		history: []grid.Vertex{start},
	}, nil
}

// Move steps one cell in direction d if a maze edge allows it, and reports
// whether the navigator moved. Moves after a win are ignored.
func (n *Navigator) Move(d grid.Direction) bool {
	if n.won {
		return false
	}
	next, ok := n.maze.Grid().Neighbor(n.pos, d)
	if !ok || !n.maze.HasEdge(n.pos, next) {
		return false
	}
	n.pos = next
	n.history = append(n.history, next)
	n.moves++
	if next == n.goal {
		n.won = true
		n.state = Replaying
	}
	return true
}

// MoveUp steps toward y-1.
func (n *Navigator) MoveUp() bool { return n.Move(grid.Up) }

// MoveDown steps toward y+1.
func (n *Navigator) MoveDown() bool { return n.Move(grid.Down) }

// MoveLeft steps toward x-1.
func (n *Navigator) MoveLeft() bool { return n.Move(grid.Left) }

// MoveRight steps toward x+1.
func (n *Navigator) MoveRight() bool { return n.Move(grid.Right) }

// AdvanceReplay pops the most recent history vertex onto the animator.
// Once the history is empty the navigator becomes Final.
func (n *Navigator) AdvanceReplay() error {
	if n.state != Replaying {
		return fmt.Errorf("%w: navigator is %s", ErrNotReplaying, n.state)
	}
	last := len(n.history) - 1
	if last < 0 {
		n.state = Final
		return nil
	}
	n.animator = append(n.animator, n.history[last])
	n.history = n.history[:last]
	return nil
}

// Position returns the current cell.
func (n *Navigator) Position() grid.Vertex { return n.pos }

// Goal returns the target cell.
func (n *Navigator) Goal() grid.Vertex { return n.goal }

// History returns a copy of the remaining move history, start first.
func (n *Navigator) History() []grid.Vertex {
	out := make([]grid.Vertex, len(n.history))
	copy(out, n.history)
	return out
}

// Animator returns a copy of the replayed path, goal first.
func (n *Navigator) Animator() []grid.Vertex {
	out := make([]grid.Vertex, len(n.animator))
	copy(out, n.animator)
	return out
}

// Moves counts accepted moves.
func (n *Navigator) Moves() int { return n.moves }

// Won reports whether the goal has been reached.
func (n *Navigator) Won() bool { return n.won }

// State returns the lifecycle state.
func (n *Navigator) State() State { return n.state }

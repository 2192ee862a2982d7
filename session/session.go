package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/player"
	"github.com/katalvlaran/lvmaze/search"
)

// ErrTickLimit is returned by Run when maxTicks elapse with work left.
var ErrTickLimit = errors.New("session: tick limit reached")

// Display selects which agent the renderer should show.
type Display int

const (
	// DisplayNone shows the bare maze.
	DisplayNone Display = iota
	// DisplayDepthFirst shows the depth-first engine.
	DisplayDepthFirst
	// DisplayBreadthFirst shows the breadth-first engine.
	DisplayBreadthFirst
	// DisplayManual shows the player.
	DisplayManual
)

func (d Display) String() string {
	switch d {
	case DisplayNone:
		return "none"
	case DisplayDepthFirst:
		return "dfs"
	case DisplayBreadthFirst:
		return "bfs"
	case DisplayManual:
		return "manual"
	}
	return fmt.Sprintf("Display(%d)", int(d))
}

// Session is one maze and its agents.
type Session struct {
	log       logrus.FieldLogger
	maxWeight int
	trace     bool

	seed int64
	maze *maze.Maze

	dfs *search.Engine
	bfs *search.Engine

	player *player.Navigator
	manual bool

	display Display
	ticks   int
}

// New builds a width×height maze from seed and returns an idle session.
func New(width, height int, seed int64, opts ...Option) (*Session, error) {
	s := defaults()
	for _, opt := range opts {
		opt(s)
	}
	if err := s.ResetMaze(width, height, seed); err != nil {
		return nil, err
	}
	return s, nil
}

// ResetMaze rebuilds the maze and discards all search and player state.
func (s *Session) ResetMaze(width, height int, seed int64) error {
	g, err := grid.New(width, height)
	if err != nil {
		return err
	}
	m, err := maze.Build(g, maze.WithSeed(seed), maze.WithMaxWeight(s.maxWeight))
	if err != nil {
		return err
	}
	nav, err := player.New(m, m.Start(), m.Goal())
	if err != nil {
		return err
	}

	s.seed = seed
	s.maze = m
	s.dfs, s.bfs = nil, nil
	s.player = nav
	s.manual = false
	s.display = DisplayNone
	s.ticks = 0

	s.log.WithFields(logrus.Fields{
		"width":  width,
		"height": height,
		"seed":   seed,
		"edges":  m.EdgeCount(),
	}).Info("maze built")
	return nil
}

// ArmDepthFirst shows the depth-first search, arming both engines first
// when no search is on display.
func (s *Session) ArmDepthFirst() error {
	return s.arm(DisplayDepthFirst)
}

// ArmBreadthFirst shows the breadth-first search, arming both engines first
// when no search is on display.
func (s *Session) ArmBreadthFirst() error {
	return s.arm(DisplayBreadthFirst)
}

func (s *Session) arm(d Display) error {
	if s.searchDisplayed() {
		s.display = d
		s.log.WithField("display", d).Debug("search display switched")
		return nil
	}
	dfs, err := s.newEngine(search.DepthFirst)
	if err != nil {
		return err
	}
	bfs, err := s.newEngine(search.BreadthFirst)
	if err != nil {
		return err
	}
	s.dfs, s.bfs = dfs, bfs
	s.manual = false
	s.display = d
	s.log.WithField("display", d).Info("search engines armed")
	return nil
}

func (s *Session) newEngine(st search.Strategy) (*search.Engine, error) {
	log := s.log.WithField("strategy", st)
	opts := []search.Option{
		search.WithOnGoal(func(v grid.Vertex) {
			log.WithField("vertex", v).Info("goal found")
		}),
	}
	if s.trace {
		opts = append(opts,
			search.WithOnVisit(func(v grid.Vertex) {
				log.WithField("vertex", v).Trace("visited")
			}),
			search.WithOnDiscover(func(v grid.Vertex, via grid.Edge) {
				log.WithFields(logrus.Fields{"vertex": v, "via": via}).Trace("discovered")
			}),
		)
	}
	return search.New(s.maze, st, s.maze.Start(), s.maze.Goal(), opts...)
}

// EnterManualMode turns on manual play. It is ignored while a search is on
// display, and reports whether manual mode is now active.
func (s *Session) EnterManualMode() bool {
	if s.searchDisplayed() {
		s.log.Debug("manual mode refused: search on display")
		return false
	}
	s.manual = true
	s.display = DisplayManual
	s.log.Debug("manual mode entered")
	return true
}

// ExitManualMode resets only the player: position back to the start, empty
// history, manual mode off. Maze and search state are left untouched.
func (s *Session) ExitManualMode() error {
	nav, err := player.New(s.maze, s.maze.Start(), s.maze.Goal())
	if err != nil {
		return err
	}
	s.player = nav
	s.manual = false
	if s.display == DisplayManual {
		s.display = DisplayNone
	}
	s.log.Debug("manual mode exited")
	return nil
}

// Move steps the player in direction d. Outside manual mode it does nothing.
// It reports whether the player moved.
func (s *Session) Move(d grid.Direction) bool {
	if !s.manual {
		return false
	}
	moved := s.player.Move(d)
	if moved && s.player.Won() {
		s.log.WithField("moves", s.player.Moves()).Info("player reached the goal")
	}
	return moved
}

// Tick advances every active machine by one unit of work in the fixed
// order: depth-first step, breadth-first step, depth-first reconstruction,
// breadth-first reconstruction, player replay. Errors are precondition
// violations and are returned at once.
func (s *Session) Tick() error {
	s.ticks++
	if s.dfs.State() == search.Running {
		if err := s.dfs.Advance(); err != nil {
			return err
		}
	}
	if s.bfs.State() == search.Running {
		if err := s.bfs.Advance(); err != nil {
			return err
		}
	}
	if s.dfs.State() == search.GoalFound {
		if err := s.dfs.AdvanceReconstruction(); err != nil {
			return err
		}
	}
	if s.bfs.State() == search.GoalFound {
		if err := s.bfs.AdvanceReconstruction(); err != nil {
			return err
		}
	}
	if s.player.State() == player.Replaying {
		if err := s.player.AdvanceReplay(); err != nil {
			return err
		}
	}
	return nil
}

// Run ticks until no machine has work left, ctx is cancelled, or maxTicks
// ticks have run (maxTicks ≤ 0 means no limit). It returns the number of
// ticks executed by this call.
func (s *Session) Run(ctx context.Context, maxTicks int) (int, error) {
	n := 0
	for s.Active() {
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		default:
		}
		if maxTicks > 0 && n >= maxTicks {
			return n, fmt.Errorf("%w: %d", ErrTickLimit, maxTicks)
		}
		if err := s.Tick(); err != nil {
			return n, err
		}
		n++
	}
	s.log.WithField("ticks", n).Debug("session idle")
	return n, nil
}

// Active reports whether any machine still has work for Tick.
func (s *Session) Active() bool {
	busy := func(e *search.Engine) bool {
		st := e.State()
		return st == search.Running || st == search.GoalFound
	}
	return busy(s.dfs) || busy(s.bfs) || s.player.State() == player.Replaying
}

func (s *Session) searchDisplayed() bool {
	return s.display == DisplayDepthFirst || s.display == DisplayBreadthFirst
}

// Maze returns the current maze.
func (s *Session) Maze() *maze.Maze { return s.maze }

// Width returns the grid width.
func (s *Session) Width() int { return s.maze.Grid().Width }

// Height returns the grid height.
func (s *Session) Height() int { return s.maze.Grid().Height }

// Seed returns the seed the current maze was built from.
func (s *Session) Seed() int64 { return s.seed }

// DepthFirst returns the depth-first engine, or nil while idle.
func (s *Session) DepthFirst() *search.Engine { return s.dfs }

// BreadthFirst returns the breadth-first engine, or nil while idle.
func (s *Session) BreadthFirst() *search.Engine { return s.bfs }

// Player returns the navigator.
func (s *Session) Player() *player.Navigator { return s.player }

// Display returns the current display selector.
func (s *Session) Display() Display { return s.display }

// SearchingDepthFirst reports whether the depth-first search is on display.
func (s *Session) SearchingDepthFirst() bool { return s.display == DisplayDepthFirst }

// SearchingBreadthFirst reports whether the breadth-first search is on display.
func (s *Session) SearchingBreadthFirst() bool { return s.display == DisplayBreadthFirst }

// ManualMode reports whether moves are accepted.
func (s *Session) ManualMode() bool { return s.manual }

// Won reports whether the player has reached the goal.
func (s *Session) Won() bool { return s.player.Won() }

// Ticks counts Tick calls since the maze was last built.
func (s *Session) Ticks() int { return s.ticks }

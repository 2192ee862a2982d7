package search_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	v00 = grid.Vertex{X: 0, Y: 0}
	v10 = grid.Vertex{X: 1, Y: 0}
	v20 = grid.Vertex{X: 2, Y: 0}
)

// line3 is the 3×1 maze (0,0)-(1,0)-(2,0).
func line3(t *testing.T) *maze.Maze {
	t.Helper()
	g, err := grid.New(3, 1)
	require.NoError(t, err)
	m, err := maze.FromEdges(g, []grid.Edge{{A: v00, B: v10}, {A: v10, B: v20}})
	require.NoError(t, err)
	return m
}

// fullGrid returns a w×h maze holding every candidate edge, so it has cycles.
func fullGrid(t *testing.T, w, h int) *maze.Maze {
	t.Helper()
	g, err := grid.New(w, h)
	require.NoError(t, err)
	m, err := maze.FromEdges(g, maze.Candidates(g, rand.New(rand.NewSource(1)), 1))
	require.NoError(t, err)
	return m
}

func built(t *testing.T, w, h int, seed int64) *maze.Maze {
	t.Helper()
	g, err := grid.New(w, h)
	require.NoError(t, err)
	m, err := maze.Build(g, maze.WithSeed(seed))
	require.NoError(t, err)
	return m
}

// TestDepthFirst_StepByStep traces every tick of a DFS on the 3×1 line.
func TestDepthFirst_StepByStep(t *testing.T) {
	m := line3(t)
	e, err := search.New(m, search.DepthFirst, v00, v20)
	require.NoError(t, err)
	assert.Equal(t, search.Running, e.State())
	assert.Equal(t, []grid.Vertex{v00}, e.Frontier())

	require.NoError(t, e.Advance())
	assert.Equal(t, []grid.Vertex{v00}, e.Visited())
	assert.Equal(t, []grid.Vertex{v10}, e.Frontier())

	require.NoError(t, e.Advance())
	assert.Equal(t, []grid.Vertex{v00, v10}, e.Visited())
	assert.Equal(t, []grid.Vertex{v00, v20}, e.Frontier(), "stack bottom to top")

	require.NoError(t, e.Advance())
	assert.Equal(t, search.GoalFound, e.State())
	assert.Equal(t, []grid.Vertex{v00, v10, v20}, e.Visited())
	assert.Equal(t, []grid.Vertex{v20}, e.Path())

	assert.ErrorIs(t, e.Advance(), search.ErrNotRunning)

	require.NoError(t, e.AdvanceReconstruction())
	assert.Equal(t, []grid.Vertex{v20, v10}, e.Path())
	require.NoError(t, e.AdvanceReconstruction())
	assert.Equal(t, []grid.Vertex{v20, v10, v00}, e.Path())
	assert.Equal(t, search.GoalFound, e.State(), "start reached but not yet confirmed")
	require.NoError(t, e.AdvanceReconstruction())
	assert.Equal(t, search.Done, e.State())
	assert.ErrorIs(t, e.AdvanceReconstruction(), search.ErrNotReconstructing)

	assert.Equal(t, 3, e.Steps())
	assert.Zero(t, e.WastedSteps())
	assert.Zero(t, e.WrongMoves())
}

// TestBreadthFirst_WastedStep shows the queue re-popping the visited start,
// a step that changes nothing but still costs a tick.
func TestBreadthFirst_WastedStep(t *testing.T) {
	m := line3(t)
	e, err := search.New(m, search.BreadthFirst, v00, v20)
	require.NoError(t, err)

	require.NoError(t, e.Advance()) // (0,0)
	require.NoError(t, e.Advance()) // (1,0), queue = [(0,0), (2,0)]
	assert.Equal(t, []grid.Vertex{v00, v20}, e.Frontier(), "queue head to tail")

	require.NoError(t, e.Advance()) // (0,0) again
	assert.Equal(t, 1, e.WastedSteps())
	assert.Equal(t, []grid.Vertex{v00, v10}, e.Visited())
	assert.Equal(t, search.Running, e.State())

	require.NoError(t, e.Advance()) // goal
	assert.Equal(t, search.GoalFound, e.State())
	assert.Equal(t, 4, e.Steps())
}

// TestPredecessors_FirstDiscoveryWins checks a later rediscovery never
// overwrites a recorded predecessor.
func TestPredecessors_FirstDiscoveryWins(t *testing.T) {
	m := fullGrid(t, 2, 2)
	e, err := search.New(m, search.BreadthFirst, v00, grid.Vertex{X: 1, Y: 1})
	require.NoError(t, err)
	require.NoError(t, e.Advance())
	first := e.Predecessors()

	for e.State() == search.Running {
		require.NoError(t, e.Advance())
	}
	after := e.Predecessors()
	for v, edge := range first {
		assert.Equal(t, edge, after[v], "predecessor of %v changed", v)
	}
}

// TestSingleCell covers the degenerate 1×1 maze where start equals goal.
func TestSingleCell(t *testing.T) {
	m := built(t, 1, 1, 0)
	for _, s := range []search.Strategy{search.DepthFirst, search.BreadthFirst} {
		e, err := search.New(m, s, v00, v00)
		require.NoError(t, err)
		require.NoError(t, e.Advance())
		assert.Equal(t, search.GoalFound, e.State())
		require.NoError(t, e.AdvanceReconstruction())
		assert.Equal(t, search.Done, e.State())
		assert.Equal(t, []grid.Vertex{v00}, e.Path())
	}
}

// TestNew_Errors verifies input validation.
func TestNew_Errors(t *testing.T) {
	m := line3(t)
	_, err := search.New(nil, search.DepthFirst, v00, v20)
	assert.ErrorIs(t, err, search.ErrMazeNil)

	_, err = search.New(m, search.DepthFirst, v00, grid.Vertex{X: 3, Y: 0})
	assert.ErrorIs(t, err, search.ErrVertexOutOfBounds)

	_, err = search.New(m, search.BreadthFirst, v00, v20, search.WithOnVisit(nil))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

// TestAdvance_FrontierExhausted drives a search on a maze with no edges:
// the goal is unreachable and the engine must fail loudly.
func TestAdvance_FrontierExhausted(t *testing.T) {
	g, _ := grid.New(2, 1)
	m, err := maze.FromEdges(g, nil)
	require.NoError(t, err)

	e, err := search.New(m, search.DepthFirst, v00, v10)
	require.NoError(t, err)
	require.NoError(t, e.Advance())
	assert.ErrorIs(t, e.Advance(), search.ErrFrontierExhausted)

	e2, _ := search.New(m, search.BreadthFirst, v00, v10)
	assert.ErrorIs(t, e2.Solve(context.Background()), search.ErrFrontierExhausted)
}

// TestSolve_Cancelled stops at the first context check.
func TestSolve_Cancelled(t *testing.T) {
	e, err := search.New(built(t, 10, 10, 1), search.BreadthFirst, v00, grid.Vertex{X: 9, Y: 9})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, e.Solve(ctx), context.Canceled)
	assert.Zero(t, e.Steps())
}

// TestHooks counts hook invocations over a full run.
func TestHooks(t *testing.T) {
	m := built(t, 8, 8, 5)
	var visits, discoveries, goals int
	e, err := search.New(m, search.DepthFirst, m.Start(), m.Goal(),
		search.WithOnVisit(func(grid.Vertex) { visits++ }),
		search.WithOnDiscover(func(grid.Vertex, grid.Edge) { discoveries++ }),
		search.WithOnGoal(func(v grid.Vertex) {
			goals++
			assert.Equal(t, m.Goal(), v)
		}),
	)
	require.NoError(t, err)
	require.NoError(t, e.Solve(context.Background()))

	assert.Equal(t, len(e.Visited()), visits)
	assert.Equal(t, len(e.Predecessors()), discoveries)
	assert.Equal(t, 1, goals)
}

// TestProperties_RandomMazes checks, for many mazes and random start/goal
// pairs: no duplicate visits, paths run goal→start over maze edges, and the
// breadth-first path is never longer than the depth-first one.
func TestProperties_RandomMazes(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for seed := int64(0); seed < 12; seed++ {
		w, h := 2+r.Intn(15), 2+r.Intn(15)
		m := built(t, w, h, seed)
		g := m.Grid()
		pairs := [][2]grid.Vertex{{g.Start(), g.Goal()}}
		for i := 0; i < 3; i++ {
			pairs = append(pairs, [2]grid.Vertex{g.Coordinate(r.Intn(g.Len())), g.Coordinate(r.Intn(g.Len()))})
		}
		for _, p := range pairs {
			t.Run(fmt.Sprintf("%dx%d/%v->%v", w, h, p[0], p[1]), func(t *testing.T) {
				dfs := solve(t, m, search.DepthFirst, p[0], p[1])
				bfs := solve(t, m, search.BreadthFirst, p[0], p[1])
				assert.LessOrEqual(t, len(bfs.Path()), len(dfs.Path()))
			})
		}
	}
}

// TestBreadthFirst_ShortestOnCyclicGraph uses a full 5×5 grid, where many
// routes exist: BFS must find a Manhattan-length path, DFS may not.
func TestBreadthFirst_ShortestOnCyclicGraph(t *testing.T) {
	m := fullGrid(t, 5, 5)
	bfs := solve(t, m, search.BreadthFirst, m.Start(), m.Goal())
	dfs := solve(t, m, search.DepthFirst, m.Start(), m.Goal())

	assert.Len(t, bfs.Path(), 9)
	assert.GreaterOrEqual(t, len(dfs.Path()), 9)
}

func solve(t *testing.T, m *maze.Maze, s search.Strategy, start, goal grid.Vertex) *search.Engine {
	t.Helper()
	e, err := search.New(m, s, start, goal)
	require.NoError(t, err)
	require.NoError(t, e.Solve(context.Background()))
	require.Equal(t, search.Done, e.State())

	seen := map[grid.Vertex]bool{}
	for _, v := range e.Visited() {
		require.False(t, seen[v], "%s visited %v twice", s, v)
		seen[v] = true
	}
	path := e.Path()
	require.NotEmpty(t, path)
	assert.Equal(t, goal, path[0])
	assert.Equal(t, start, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.True(t, m.HasEdge(path[i-1], path[i]), "%v-%v is a wall", path[i-1], path[i])
	}
	assert.Equal(t, len(e.Visited())-len(path), e.WrongMoves())
	return e
}

func BenchmarkSolve(b *testing.B) {
	g, _ := grid.New(100, 100)
	m, err := maze.Build(g, maze.WithSeed(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e, _ := search.New(m, search.BreadthFirst, m.Start(), m.Goal())
		if err := e.Solve(context.Background()); err != nil {
			b.Fatal(err)
		}
	}
}

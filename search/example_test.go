package search_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/katalvlaran/lvmaze/search"
)

// ExampleEngine_Advance ticks a breadth-first search on a 3×1 corridor,
// printing the state after every call. The third tick re-pops the start
// and is wasted.
func ExampleEngine_Advance() {
	g, _ := grid.New(3, 1)
	a, b, c := grid.Vertex{X: 0}, grid.Vertex{X: 1}, grid.Vertex{X: 2}
	m, _ := maze.FromEdges(g, []grid.Edge{{A: a, B: b}, {A: b, B: c}})

	e, _ := search.New(m, search.BreadthFirst, a, c)
	for tick := 1; e.State() != search.Done; tick++ {
		_ = e.Step()
		fmt.Printf("tick %d: %-10s visited=%v path=%v\n", tick, e.State(), e.Visited(), e.Path())
	}
	// Output:
	// tick 1: running    visited=[(0,0)] path=[]
	// tick 2: running    visited=[(0,0) (1,0)] path=[]
	// tick 3: running    visited=[(0,0) (1,0)] path=[]
	// tick 4: goal-found visited=[(0,0) (1,0) (2,0)] path=[(2,0)]
	// tick 5: goal-found visited=[(0,0) (1,0) (2,0)] path=[(2,0) (1,0)]
	// tick 6: goal-found visited=[(0,0) (1,0) (2,0)] path=[(2,0) (1,0) (0,0)]
	// tick 7: done       visited=[(0,0) (1,0) (2,0)] path=[(2,0) (1,0) (0,0)]
}

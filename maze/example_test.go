package maze_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/maze"
)

// ExampleBuild grows a seeded 6×4 maze and checks its tree invariants.
func ExampleBuild() {
	g, _ := grid.New(6, 4)
	m, err := maze.Build(g, maze.WithSeed(2024))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("edges:", m.EdgeCount())
	fmt.Println("valid:", m.Validate() == nil)
	// Output:
	// edges: 23
	// valid: true
}

package maze

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/unionfind"
)

// Candidates returns one edge for every orthogonally adjacent vertex pair of g,
// each weighted with rng.Intn(maxWeight).
//
// Order: x outer, y inner, skipping (0,0). For each (x,y) the edge to (x-1,y)
// comes first (when x > 0), then the edge to (x,y-1) (when y > 0). The count
// is (W-1)·H + W·(H-1).
func Candidates(g grid.Grid, rng *rand.Rand, maxWeight int) []grid.Edge {
	n := (g.Width-1)*g.Height + g.Width*(g.Height-1)
	edges := make([]grid.Edge, 0, n)
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			v := grid.Vertex{X: x, Y: y}
			if x > 0 {
				edges = append(edges, grid.Edge{A: v, B: grid.Vertex{X: x - 1, Y: y}, Weight: rng.Intn(maxWeight)})
			}
			if y > 0 {
				edges = append(edges, grid.Edge{A: v, B: grid.Vertex{X: x, Y: y - 1}, Weight: rng.Intn(maxWeight)})
			}
		}
	}
	return edges
}

// Build generates a perfect maze over g with a randomized Kruskal.
//
// Steps:
//  1. Resolve options; ErrOptionViolation on bad input.
//  2. Generate Candidates and sort them ascending by Weight with a stable
//     sort, so equal weights keep generation order.
//  3. Seed a UnionFind with every vertex as its own tree.
//  4. While more than one tree remains and candidates are left, take the
//     lightest candidate: discard it if both endpoints share a root,
//     otherwise keep it and Union its endpoints.
//
// A 1×1 grid yields zero edges; 1×N and N×1 grids yield the single path.
// Complexity: O(E log E + E·α(V)). Memory: O(V + E).
func Build(g grid.Grid, opts ...Option) (*Maze, error) {
	if g.Width < 1 || g.Height < 1 {
		return nil, grid.ErrEmptyGrid
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	worklist := Candidates(g, o.Rand, o.MaxWeight)
	sort.SliceStable(worklist, func(i, j int) bool {
		return worklist[i].Weight < worklist[j].Weight
	})

	uf := unionfind.New(g.Vertices())
	tree := make([]grid.Edge, 0, g.Len()-1)
	for i := 0; uf.TreeCount() > 1 && i < len(worklist); i++ {
		e := worklist[i]
		if uf.Find(e.A) == uf.Find(e.B) {
			continue
		}
		tree = append(tree, e)
		uf.Union(e.A, e.B)
	}

	return newMaze(g, tree), nil
}

// Package unionfind implements the disjoint-set forest used to grow a maze's
// spanning tree. Each vertex maps to a representative; a vertex that maps to
// itself is the root of its tree.
//
// Union keeps the maze generator's asymmetric policy: a root endpoint is
// re-pointed straight at the other endpoint, otherwise the two set roots are
// linked. The policy changes tree shape only, never which vertices share a set.
package unionfind

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// UnionFind is a disjoint-set forest keyed by grid vertices.
// It is not safe for concurrent use.
type UnionFind struct {
	rep   map[grid.Vertex]grid.Vertex
	trees int
}

// New returns a UnionFind in which every vertex of vs is a singleton set.
// Duplicate vertices are ignored.
// Complexity: O(V).
func New(vs []grid.Vertex) *UnionFind {
	uf := &UnionFind{rep: make(map[grid.Vertex]grid.Vertex, len(vs))}
	for _, v := range vs {
		if _, ok := uf.rep[v]; ok {
			continue
		}
		uf.rep[v] = v
		uf.trees++
	}
	return uf
}

// Len returns the number of tracked vertices.
func (uf *UnionFind) Len() int {
	return len(uf.rep)
}

// Representative returns the direct representative link of v, without walking.
func (uf *UnionFind) Representative(v grid.Vertex) grid.Vertex {
	return uf.mustRep(v)
}

// Find returns the root of the set containing v.
// The walk is iterative and halves the path as it goes.
// Panics if v was never added.
// Complexity: amortized O(log V).
func (uf *UnionFind) Find(v grid.Vertex) grid.Vertex {
	for {
		p := uf.mustRep(v)
		if p == v {
			return v
		}
		// Path halving: point v at its grandparent.
		gp := uf.rep[p]
		uf.rep[v] = gp
		v = gp
	}
}

// Union merges the sets containing a and b. It is a no-op when they already
// share a root.
//
// Policy: if a is its own representative it is re-pointed directly at b;
// otherwise the root of a's set is re-pointed at the root of b's set.
func (uf *UnionFind) Union(a, b grid.Vertex) {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return
	}
	if uf.rep[a] == a {
		uf.rep[a] = b
	} else {
		uf.rep[ra] = rb
	}
	uf.trees--
}

// Connected reports whether a and b are in the same set.
func (uf *UnionFind) Connected(a, b grid.Vertex) bool {
	return uf.Find(a) == uf.Find(b)
}

// TreeCount returns how many vertices are their own representative.
// Complexity: O(1).
func (uf *UnionFind) TreeCount() int {
	return uf.trees
}

// HasCycleFrom probes the representative chain starting at v and reports
// whether it revisits a vertex before reaching a root. The probe does not
// compress paths and stops after Len() links.
func (uf *UnionFind) HasCycleFrom(v grid.Vertex) bool {
	seen := make(map[grid.Vertex]struct{})
	cur := v
	for i := 0; i <= len(uf.rep); i++ {
		next := uf.mustRep(cur)
		if next == cur {
			return false
		}
		if _, ok := seen[cur]; ok {
			return true
		}
		seen[cur] = struct{}{}
		cur = next
	}
	return true
}

func (uf *UnionFind) mustRep(v grid.Vertex) grid.Vertex {
	p, ok := uf.rep[v]
	if !ok {
		panic(fmt.Sprintf("unionfind: unknown vertex %v", v))
	}
	return p
}

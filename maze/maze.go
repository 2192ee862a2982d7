package maze

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/unionfind"
)

// Maze is a grid plus the edge set that opens passages between cells.
// It is read-only after construction and may be shared by any number of
// search engines and navigators.
type Maze struct {
	grid     grid.Grid
	edges    []grid.Edge
	incident map[grid.Vertex][]grid.Edge
}

// FromEdges wraps a given edge set over g. Every edge must join two
// in-bounds, orthogonally adjacent vertices; the set need not be a tree.
func FromEdges(g grid.Grid, edges []grid.Edge) (*Maze, error) {
	if g.Width < 1 || g.Height < 1 {
		return nil, grid.ErrEmptyGrid
	}
	for _, e := range edges {
		if !g.Contains(e.A) || !g.Contains(e.B) {
			return nil, fmt.Errorf("%w: edge %v", grid.ErrOutOfBounds, e)
		}
		if !g.Adjacent(e.A, e.B) {
			return nil, fmt.Errorf("%w: edge %v", ErrNotAdjacent, e)
		}
	}
	cp := make([]grid.Edge, len(edges))
	copy(cp, edges)
	return newMaze(g, cp), nil
}

func newMaze(g grid.Grid, edges []grid.Edge) *Maze {
	inc := make(map[grid.Vertex][]grid.Edge, g.Len())
	for _, e := range edges {
		inc[e.A] = append(inc[e.A], e)
		inc[e.B] = append(inc[e.B], e)
	}
	return &Maze{grid: g, edges: edges, incident: inc}
}

// Grid returns the underlying grid.
func (m *Maze) Grid() grid.Grid { return m.grid }

// Start returns the grid's start vertex.
func (m *Maze) Start() grid.Vertex { return m.grid.Start() }

// Goal returns the grid's goal vertex.
func (m *Maze) Goal() grid.Vertex { return m.grid.Goal() }

// Edges returns a copy of the edge set in construction order.
func (m *Maze) Edges() []grid.Edge {
	out := make([]grid.Edge, len(m.edges))
	copy(out, m.edges)
	return out
}

// EdgeCount returns the number of edges.
func (m *Maze) EdgeCount() int { return len(m.edges) }

// Incident returns the edges touching v, in edge-set order.
// The returned slice must not be modified.
func (m *Maze) Incident(v grid.Vertex) []grid.Edge {
	return m.incident[v]
}

// HasEdge reports whether an edge joins a and b.
func (m *Maze) HasEdge(a, b grid.Vertex) bool {
	for _, e := range m.incident[a] {
		if e.Connects(a, b) {
			return true
		}
	}
	return false
}

// Connected reports whether every vertex is reachable from the start.
// Complexity: O(V + E).
func (m *Maze) Connected() bool {
	seen := make(map[grid.Vertex]bool, m.grid.Len())
	queue := []grid.Vertex{m.grid.Start()}
	seen[m.grid.Start()] = true
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, e := range m.incident[u] {
			v, _ := e.Other(u)
			if !seen[v] {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}
	return len(seen) == m.grid.Len()
}

// Acyclic reports whether no edge closes a cycle, by replaying the edge set
// through a fresh UnionFind and probing every representative chain.
// Complexity: O(E·α(V) + V).
func (m *Maze) Acyclic() bool {
	vs := m.grid.Vertices()
	uf := unionfind.New(vs)
	for _, e := range m.edges {
		if uf.Connected(e.A, e.B) {
			return false
		}
		uf.Union(e.A, e.B)
	}
	for _, v := range vs {
		if uf.HasCycleFrom(v) {
			return false
		}
	}
	return true
}

// Validate checks the spanning-tree invariants: W·H−1 edges, connected, acyclic.
func (m *Maze) Validate() error {
	if want := m.grid.Len() - 1; len(m.edges) != want {
		return fmt.Errorf("%w: got %d, want %d", ErrEdgeCount, len(m.edges), want)
	}
	if !m.Connected() {
		return ErrDisconnected
	}
	if !m.Acyclic() {
		return ErrCycle
	}
	return nil
}

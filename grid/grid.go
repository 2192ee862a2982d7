package grid

import "fmt"

// Grid is the immutable W×H vertex set of a maze.
type Grid struct {
	Width, Height int
}

// New returns a Grid of the given dimensions.
// Returns ErrEmptyGrid if either dimension is below one.
// Complexity: O(1).
func New(width, height int) (Grid, error) {
	if width < 1 || height < 1 {
		return Grid{}, fmt.Errorf("%w: got %dx%d", ErrEmptyGrid, width, height)
	}
	return Grid{Width: width, Height: height}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Contains reports whether v addresses a cell of g.
func (g Grid) Contains(v Vertex) bool {
	return g.InBounds(v.X, v.Y)
}

// Vertex returns the vertex at (x,y), or ErrOutOfBounds.
func (g Grid) Vertex(x, y int) (Vertex, error) {
	if !g.InBounds(x, y) {
		return Vertex{}, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, x, y, g.Width, g.Height)
	}
	return Vertex{X: x, Y: y}, nil
}

// Len returns the number of vertices, W·H.
func (g Grid) Len() int {
	return g.Width * g.Height
}

// Vertices returns every vertex in row-major order.
// Complexity: O(W·H).
func (g Grid) Vertices() []Vertex {
	vs := make([]Vertex, 0, g.Len())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			vs = append(vs, Vertex{X: x, Y: y})
		}
	}
	return vs
}

// Neighbor returns the vertex one step from v in direction d,
// and false when that step leaves the grid.
func (g Grid) Neighbor(v Vertex, d Direction) (Vertex, bool) {
	dx, dy := d.Offset()
	if dx == 0 && dy == 0 {
		return Vertex{}, false
	}
	n := Vertex{X: v.X + dx, Y: v.Y + dy}
	if !g.Contains(n) {
		return Vertex{}, false
	}
	return n, true
}

// Adjacent reports whether a and b are both in the grid and differ by
// exactly one step along a single axis.
func (g Grid) Adjacent(a, b Vertex) bool {
	if !g.Contains(a) || !g.Contains(b) {
		return false
	}
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	return dx+dy == 1
}

// Start is the top-left vertex.
func (g Grid) Start() Vertex {
	return Vertex{}
}

// Goal is the bottom-right vertex.
func (g Grid) Goal() Vertex {
	return Vertex{X: g.Width - 1, Y: g.Height - 1}
}

// Index maps v to a row-major index: y*Width + x.
// Complexity: O(1).
func (g Grid) Index(v Vertex) int {
	return v.Y*g.Width + v.X
}

// Coordinate converts a row-major index back to a vertex.
// Complexity: O(1).
func (g Grid) Coordinate(idx int) Vertex {
	return Vertex{X: idx % g.Width, Y: idx / g.Width}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

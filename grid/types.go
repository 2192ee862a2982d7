package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no columns or no rows was requested.
	ErrEmptyGrid = errors.New("grid: width and height must be at least one")
	// ErrOutOfBounds indicates coordinates that do not address a grid cell.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
	// ErrBadDirection indicates an unknown direction name.
	ErrBadDirection = errors.New("grid: unknown direction")
)

// Vertex is one maze cell, addressed by column X and row Y.
type Vertex struct {
	X, Y int
}

// String renders the vertex as "(x,y)".
func (v Vertex) String() string {
	return fmt.Sprintf("(%d,%d)", v.X, v.Y)
}

// Edge is an unordered connection between two adjacent vertices.
// Weight only imposes a randomized order during maze construction.
type Edge struct {
	A, B   Vertex
	Weight int
}

// Has reports whether v is one of the edge endpoints.
func (e Edge) Has(v Vertex) bool {
	return e.A == v || e.B == v
}

// Other returns the endpoint opposite to v, and false if v is not an endpoint.
func (e Edge) Other(v Vertex) (Vertex, bool) {
	switch v {
	case e.A:
		return e.B, true
	case e.B:
		return e.A, true
	default:
		return Vertex{}, false
	}
}

// Connects reports whether the edge joins a and b, in either orientation.
func (e Edge) Connects(a, b Vertex) bool {
	return (e.A == a && e.B == b) || (e.A == b && e.B == a)
}

// String renders the edge as "(x,y)-(x,y)".
func (e Edge) String() string {
	return e.A.String() + "-" + e.B.String()
}

// Direction is one of the four orthogonal moves.
type Direction int

const (
	// Up moves to y-1.
	Up Direction = iota
	// Down moves to y+1.
	Down
	// Left moves to x-1.
	Left
	// Right moves to x+1.
	Right
)

// Directions lists every Direction in declaration order.
var Directions = [...]Direction{Up, Down, Left, Right}

// offsets are indexed by Direction.
var offsets = [...][2]int{
	Up:    {0, -1},
	Down:  {0, 1},
	Left:  {-1, 0},
	Right: {1, 0},
}

// Offset returns the (dx, dy) step of d.
func (d Direction) Offset() (dx, dy int) {
	if d < Up || d > Right {
		return 0, 0
	}
	o := offsets[d]
	return o[0], o[1]
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection maps a case-insensitive name ("up", "down", "left",
// "right", or the single letters u/d/l/r) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDirection, s)
}

// Package grid models the addressable cells of a maze as a rectangular
// W×H set of integer-coordinate vertices, together with the undirected
// edges that may connect orthogonally adjacent cells.
//
// What:
//
//   - Vertex is a value type (X, Y); two vertices with equal coordinates
//     are interchangeable and usable as map keys.
//   - Edge is an unordered pair of vertices plus a construction-only Weight.
//   - Grid is immutable once built and answers bounds, neighbor and
//     row-major index questions in O(1).
//   - Direction names the four orthogonal moves (no diagonals, no wraparound).
//
// Conventions:
//
//   - Up decreases Y, Left decreases X.
//   - Start() is the top-left vertex (0,0); Goal() is the bottom-right
//     vertex (W-1,H-1). On a 1×1 grid they coincide.
//
// Errors:
//
//   - ErrEmptyGrid:   width or height below one.
//   - ErrOutOfBounds: coordinates outside the grid.
//   - ErrBadDirection: unknown direction name.
package grid

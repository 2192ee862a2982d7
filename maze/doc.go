// Package maze builds perfect grid mazes: spanning trees over the
// orthogonal-adjacency graph of a grid, grown with a randomized Kruskal.
//
// What:
//
//   - Candidates generates one weighted edge per adjacent vertex pair.
//   - Build sorts candidates by weight and keeps every edge whose endpoints
//     are still in different union-find sets, until one set remains.
//   - Maze answers incidence and edge-membership queries for the search
//     engines and the player navigator, and can verify its own tree shape.
//
// Guarantees for a built W×H maze:
//
//   - exactly W·H−1 edges;
//   - connected: every vertex reaches every other through maze edges;
//   - acyclic: exactly one simple path joins any two vertices.
//
// Determinism:
//
//   - Candidates are generated column by column (x outer, y inner) and sorted
//     with a stable sort, so ties keep generation order. A fixed seed always
//     yields the same maze.
//
// Complexity:
//
//   - Build: O(E log E + E·α(V)) time, O(V + E) memory, E ≈ 2·W·H.
//   - Incident, HasEdge: O(deg) ≤ O(4).
//
// Errors:
//
//   - ErrOptionViolation: invalid builder option (e.g. non-positive max weight).
//   - ErrNotAdjacent, grid.ErrOutOfBounds: FromEdges given an impossible edge.
//   - ErrEdgeCount, ErrDisconnected, ErrCycle: Validate found a non-tree.
package maze

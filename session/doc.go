// Package session ties one maze to its three traversal agents and drives
// them from a single tick source.
//
// A Session holds three independently owned parts:
//
//   - the maze state: grid and spanning-tree edge set, rebuilt only by ResetMaze;
//   - two search states, depth-first and breadth-first, armed together;
//   - the player state, reset on its own by ExitManualMode.
//
// Tick advances, in this fixed order and at most one unit of work each:
// the depth-first expansion, the breadth-first expansion, the depth-first
// reconstruction, the breadth-first reconstruction, the player replay.
// Which search is shown is a separate display selector, so switching the
// view never disturbs either engine.
//
// A Session is single-threaded: every method is meant to be called from the
// one goroutine that owns the tick loop.
package session

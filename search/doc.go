// Package search provides steppable depth-first and breadth-first searches
// over a maze.Maze, plus stepwise reconstruction of the found path.
//
// An Engine never runs to completion on its own: each Advance performs one
// vertex expansion and returns, so an external clock can interleave several
// engines and show the search unfolding frame by frame.
//
// Lifecycle:
//
//	Idle → Running → GoalFound → Done
//
//   - New arms the engine: frontier = [start], visited and predecessors empty.
//   - Advance pops one vertex. A vertex popped again after being visited is a
//     wasted step: nothing else happens. Popping the goal moves the engine to
//     GoalFound. Any other vertex pushes all of its maze neighbors and records
//     the discovering edge for neighbors without a predecessor yet.
//   - AdvanceReconstruction walks predecessors back from the goal, one vertex
//     per call, and moves the engine to Done once the start is reached.
//
// The two strategies share every rule except frontier discipline: DepthFirst
// uses a stack, BreadthFirst a FIFO queue. Breadth-first paths have the
// minimum edge count; depth-first paths usually do not.
//
// Errors:
//
//   - ErrMazeNil, ErrVertexOutOfBounds, ErrOptionViolation: New given bad input.
//   - ErrNotRunning: Advance outside the Running state.
//   - ErrFrontierExhausted: the frontier emptied before the goal was found.
//   - ErrNotReconstructing: AdvanceReconstruction outside GoalFound.
//   - ErrBrokenChain, ErrReconstructionDone: Reconstructor misuse.
package search

// Package lvmaze generates perfect grid mazes and lets three agents walk
// them one step at a time: a depth-first search, a breadth-first search and
// a human player.
//
// A maze is a spanning tree of the 4-neighbour grid graph, built by
// randomized Kruskal over a union-find forest, so every pair of cells is
// joined by exactly one route. Searches and the player are explicit state
// machines advanced by a session tick, which keeps every intermediate state
// observable for a renderer or a test.
//
// Packages:
//
//	grid/       cells, directions and the 4-neighbour grid graph
//	unionfind/  disjoint-set forest used by the generator
//	maze/       randomized Kruskal maze generation and validation
//	search/     steppable depth-first and breadth-first engines with path reconstruction
//	player/     edge-checked manual navigation and replay of the walked route
//	session/    one maze, two engines and a player driven by a fixed tick order
//	config/     viper-backed settings with LVMAZE_* environment overrides
//	report/     run summaries encoded as JSON, YAML or TOML
//
// The lvmaze command (cmd/lvmaze) exposes solve, play and validate.
package lvmaze

// Package lvlath is a small toolbox of grid, search and simulation
// primitives for puzzle-style problems: shortest climbs over height maps,
// round-based item redistribution with huge numbers, marker detection in
// symbol streams, falling-sand boards and valve-opening plans over tunnel
// graphs.
//
// 🚀 What is in lvlath-aoc?
//
//	A set of focused, independently usable packages:
//		• grid:      coordinates, bounds, dense and sparse boards
//		• core:      thread-safe string-keyed graph with weighted vertices
//		• astar:     generic best-first search with admissible heuristics
//		• heightmap: parse an elevation map and find the shortest climb
//		• turnsim:   deterministic turn-based item routing, YAML scenarios
//		• window:    first window of N distinct symbols
//		• sandfall:  sand settling over rock on a sparse board
//		• valves:    tunnel network parsing, routes and pressure planning
//		• logger:    process logger; algorithms stay silent unless given one
//
// ✨ Conventions shared by every package:
//
//   - Sentinel errors live in types.go and are matched with errors.Is.
//     "Nothing found" outcomes (astar.ErrNoPath, window.ErrNotFound) are
//     errors too, never panics or magic values.
//   - Behaviour is tuned with functional options (WithX) over a
//     DefaultOptions() value.
//   - Long-running loops accept WithLogger(logrus.FieldLogger) and log a
//     Debug summary tagged with a "component" field.
//   - Parsers take text that was already read; nothing here touches files
//     except turnsim.LoadScenario.
//
// Layout:
//
//	grid/      Coord, Bounds, Dense[T], Sparse[T]
//	core/      Graph, Vertex, Edge
//	astar/     Search, SearchFunc, grid and graph neighbor helpers
//	heightmap/ Parse, ShortestClimb, ShortestHike
//	turnsim/   Simulator, Residues, Operation, Scenario
//	window/    FirstUnique, AllUnique
//	sandfall/  Cave, ParsePaths
//	logger/    Init, New, Discard, Component
//
// Quick example:
//
//	hm, _ := heightmap.Parse(rows)
//	steps, err := hm.ShortestClimb()
//	if errors.Is(err, astar.ErrNoPath) {
//	    // the summit cannot be reached
//	}
//
//	go get github.com/katalvlaran/lvlath-aoc
package lvlath

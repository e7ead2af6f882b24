// Package valves models a tunnel network of pressure valves and plans the
// order in which to open them.
//
// Input is one line per valve:
//
//	Valve BB has flow rate=13; tunnels lead to valves CC, AA
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// The network is a directed core.Graph: each listed tunnel is a one-way edge
// and a valve's flow rate is stored as its vertex weight. Shortest routes are
// found with astar over that graph, one minute per tunnel.
//
// Planning model (MaxPressure):
//
//   - The walker starts at a valve with a budget of minutes.
//   - Moving through a tunnel costs 1 minute; opening a valve costs 1 minute.
//   - A valve opened with r minutes left releases rate×r in total.
//   - Only valves with a positive rate are worth opening; each opens once.
//
// The search is exhaustive over the positive-rate valves (bitmask DFS over
// precomputed pairwise distances), so it returns the true maximum. Ties keep
// the first order found, visiting candidates in name order.
//
// Errors:
//
//	ErrBadLine          - a line does not match the valve grammar.
//	ErrDuplicateValve   - a name is declared twice.
//	ErrUnknownValve     - a tunnel or query names an undeclared valve.
//	ErrNoValves         - the input declares nothing.
//	ErrNegativeMinutes  - a negative time budget.
//	ErrTooManyValves    - more than 64 positive-rate valves.
package valves

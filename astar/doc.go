// Package astar implements best-first shortest-path search (A*) over an
// implicit graph: nodes are any comparable value and edges are produced on
// demand by a neighbor function.
//
// A* keeps an open frontier ordered by f = g + h, where g is the best known
// cost from a start and h an admissible (never overestimating) estimate of
// the cost remaining to a goal. With h ≡ 0 the search degenerates to
// Dijkstra, and with unit costs to breadth-first search.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a consistent heuristic.
//   - Space: O(V) for g-scores, predecessors and the frontier.
//
// Options:
//
//   - WithHeuristic:  admissible estimate h(n); default 0.
//   - WithCost:       step cost c(from, to) ≥ 0; default 1.
//   - WithMaxCost:    do not expand paths costing more than the cap.
//   - WithLess:       last-resort deterministic ordering of nodes.
//   - WithOnExpand:   hook invoked on every expansion.
//   - WithLogger:     logrus sink for a Debug summary of the run.
//
// Tie-break among frontier entries with equal f (fully deterministic):
//
//  1. lower h first (prefer nodes already closer to the goal);
//  2. Less(a, b), if supplied;
//  3. insertion order, first pushed first popped.
//
// Errors (sentinel):
//
//   - ErrNoPath           no goal is reachable. This is an expected outcome,
//     distinguishable from a zero-length path (a start that is itself a goal
//     yields a one-node Result).
//   - ErrNoStart          no start node was supplied.
//   - ErrNilNeighbors     the neighbor function is nil.
//   - ErrNilGoal          the goal predicate is nil.
//   - ErrNegativeCost     the cost function returned a negative value.
//   - ErrOptionViolation  an option received an invalid argument.
//
// Example usage:
//
//	res, err := astar.Search(start, goal,
//	    astar.GridNeighbors(bounds, grid.Conn4, canStep),
//	    astar.WithHeuristic(astar.ManhattanTo(goal)),
//	)
//	if errors.Is(err, astar.ErrNoPath) {
//	    // unreachable
//	}
//	fmt.Println(res.Steps())
package astar

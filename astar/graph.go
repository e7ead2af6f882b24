package astar

import "github.com/katalvlaran/lvlath-aoc/core"

// GraphNeighbors adapts a core.Graph to a NeighborFunc over vertex IDs.
// Unknown vertices have no neighbors; the order follows core's sorted IDs.
func GraphNeighbors(g *core.Graph) NeighborFunc[string] {
	return func(id string) []string {
		ids, err := g.NeighborIDs(id)
		if err != nil {
			return nil
		}

		return ids
	}
}

// GraphCost returns a step-cost function for g: 1 per edge when g is
// unweighted, otherwise the edge weight. Negative weights surface as
// ErrNegativeCost from the search.
func GraphCost(g *core.Graph) func(from, to string) int {
	if !g.Weighted() {
		return func(_, _ string) int { return 1 }
	}

	return func(from, to string) int {
		// core never removes edges, so every neighbor still has one.
		w, _ := g.EdgeWeight(from, to)

		return int(w)
	}
}

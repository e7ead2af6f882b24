package astar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-aoc/astar"
	"github.com/katalvlaran/lvlath-aoc/core"
)

func mustEdge(t *testing.T, g *core.Graph, from, to string, w int64) {
	t.Helper()
	_, err := g.AddEdge(from, to, w)
	require.NoError(t, err)
}

// TestGraph_UnweightedHops counts edges on an undirected graph.
func TestGraph_UnweightedHops(t *testing.T) {
	g := core.NewGraph()
	mustEdge(t, g, "A", "B", 0)
	mustEdge(t, g, "B", "C", 0)
	mustEdge(t, g, "C", "D", 0)
	mustEdge(t, g, "A", "E", 0)
	mustEdge(t, g, "E", "D", 0)

	res, err := astar.Search("D", "A", astar.GraphNeighbors(g),
		astar.WithCost(astar.GraphCost(g)),
		astar.WithLess(func(a, b string) bool { return a < b }))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Cost)
	assert.Equal(t, []string{"D", "E", "A"}, res.Path)
}

// TestGraph_WeightedPrefersCheaperDetour takes three cheap edges over one dear one.
func TestGraph_WeightedPrefersCheaperDetour(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	mustEdge(t, g, "s", "t", 10)
	mustEdge(t, g, "s", "a", 2)
	mustEdge(t, g, "a", "b", 2)
	mustEdge(t, g, "b", "t", 2)

	res, err := astar.Search("s", "t", astar.GraphNeighbors(g), astar.WithCost(astar.GraphCost(g)))
	require.NoError(t, err)
	assert.Equal(t, 6, res.Cost)
	assert.Equal(t, []string{"s", "a", "b", "t"}, res.Path)

	// One-way edges cannot be walked back.
	_, err = astar.Search("t", "s", astar.GraphNeighbors(g), astar.WithCost(astar.GraphCost(g)))
	assert.ErrorIs(t, err, astar.ErrNoPath)
}

// TestGraph_NegativeWeight is rejected by the search.
func TestGraph_NegativeWeight(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	mustEdge(t, g, "s", "t", -1)

	_, err := astar.Search("s", "t", astar.GraphNeighbors(g), astar.WithCost(astar.GraphCost(g)))
	assert.ErrorIs(t, err, astar.ErrNegativeCost)
}

// TestGraph_UnknownVertex has no neighbors.
func TestGraph_UnknownVertex(t *testing.T) {
	g := core.NewGraph()
	mustEdge(t, g, "A", "B", 0)

	assert.Nil(t, astar.GraphNeighbors(g)("Z"))
	_, err := astar.Search("Z", "A", astar.GraphNeighbors(g))
	assert.ErrorIs(t, err, astar.ErrNoPath)
}

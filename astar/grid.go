package astar

import "github.com/katalvlaran/lvlath-aoc/grid"

// StepFunc reports whether a single move from one cell to an adjacent one is
// allowed. It need not be symmetric.
type StepFunc func(from, to grid.Coord) bool

// GridNeighbors adapts a bounded rectangle to a NeighborFunc.
// Cells outside b are never produced; canStep filters the rest (nil allows all).
func GridNeighbors(b grid.Bounds, conn grid.Connectivity, canStep StepFunc) NeighborFunc[grid.Coord] {
	offsets := conn.Offsets()

	return func(c grid.Coord) []grid.Coord {
		out := make([]grid.Coord, 0, len(offsets))
		for _, o := range offsets {
			n := c.Add(o)
			if !b.Contains(n) {
				continue
			}
			if canStep != nil && !canStep(c, n) {
				continue
			}
			out = append(out, n)
		}

		return out
	}
}

// SparseNeighbors adapts a sparse board to a NeighborFunc.
// Only defined cells are part of the space; canStep filters moves (nil allows all).
func SparseNeighbors[T any](s *grid.Sparse[T], conn grid.Connectivity, canStep StepFunc) NeighborFunc[grid.Coord] {
	offsets := conn.Offsets()

	return func(c grid.Coord) []grid.Coord {
		out := make([]grid.Coord, 0, len(offsets))
		for _, o := range offsets {
			n := c.Add(o)
			if !s.Has(n) {
				continue
			}
			if canStep != nil && !canStep(c, n) {
				continue
			}
			out = append(out, n)
		}

		return out
	}
}

// ManhattanTo returns the L1 heuristic toward goal; admissible for unit-cost Conn4 moves.
func ManhattanTo(goal grid.Coord) func(grid.Coord) int {
	return func(c grid.Coord) int { return c.Manhattan(goal) }
}

// ChebyshevTo returns the L∞ heuristic toward goal; admissible for unit-cost Conn8 moves.
func ChebyshevTo(goal grid.Coord) func(grid.Coord) int {
	return func(c grid.Coord) int { return c.Chebyshev(goal) }
}

// RowMajor is a WithLess ordering for grid searches: lowest Y, then lowest X.
func RowMajor(a, b grid.Coord) bool {
	return a.Less(b)
}

// Package grid provides the coordinate model shared by the search and
// simulation packages of lvlath-aoc.
//
// What:
//
//   - Coord is an immutable integer pair used as a map key for sparse boards.
//   - Bounds is an inclusive axis-aligned rectangle with row-major indexing.
//   - Sparse stores only occupied cells; an absent key means "no field there".
//   - Dense stores a fixed rectangle known up front in a row-major slice.
//   - Conn4 / Conn8 select orthogonal or orthogonal+diagonal neighborhoods.
//
// Why:
//
//   - Irregular or unbounded regions (sand piles, sensor perimeters) stay cheap
//     in a Sparse board; puzzle heightmaps that arrive as full rectangles fit a
//     Dense board.
//
// Complexity:
//
//   - Coord arithmetic, Bounds.Contains, Bounds.Index: O(1).
//   - Sparse.Keys: O(n log n) (sorted row-major for deterministic iteration).
//   - Sparse.Bounds: O(n).
//   - Dense construction: O(W×H).
//
// Errors:
//
//   - ErrEmptyBounds: a rectangle or board with no cells was requested.
//   - ErrNonRectangular: rows of differing lengths were passed to FromRows.
package grid

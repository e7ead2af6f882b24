package grid

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Sparse is a board that stores only defined cells.
// An absent key means "no field there" or "outside the world",
// depending on the caller.
// The zero value is not usable; call NewSparse.
type Sparse[T any] struct {
	cells map[Coord]T
}

// NewSparse returns an empty board with room for hint cells.
func NewSparse[T any](hint int) *Sparse[T] {
	return &Sparse[T]{cells: make(map[Coord]T, hint)}
}

// Get returns the value at c and whether c is defined.
func (s *Sparse[T]) Get(c Coord) (T, bool) {
	v, ok := s.cells[c]

	return v, ok
}

// Has reports whether c is defined.
func (s *Sparse[T]) Has(c Coord) bool {
	_, ok := s.cells[c]

	return ok
}

// Set defines c with value v, replacing any previous value.
func (s *Sparse[T]) Set(c Coord, v T) {
	s.cells[c] = v
}

// Delete removes c. Deleting an absent coordinate is a no-op.
func (s *Sparse[T]) Delete(c Coord) {
	delete(s.cells, c)
}

// Len returns the number of defined cells.
func (s *Sparse[T]) Len() int {
	return len(s.cells)
}

// Keys returns every defined coordinate sorted row-major.
// Complexity: O(n log n).
func (s *Sparse[T]) Keys() []Coord {
	keys := maps.Keys(s.cells)
	slices.SortFunc(keys, func(a, b Coord) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		default:
			return 0
		}
	})

	return keys
}

// Bounds returns the smallest rectangle containing every defined cell.
// ok is false for an empty board.
// Complexity: O(n).
func (s *Sparse[T]) Bounds() (b Bounds, ok bool) {
	first := true
	for c := range s.cells {
		if first {
			b, first = Bounds{Min: c, Max: c}, false
			continue
		}
		b = b.Extend(c)
	}

	return b, !first
}

// Render draws the rectangle b one row per line using glyph, which receives
// the cell value and whether the cell is defined.
func (s *Sparse[T]) Render(b Bounds, glyph func(v T, ok bool) rune) string {
	var sb strings.Builder
	sb.Grow(b.Area() + b.Height())
	for y := b.Min.Y; y <= b.Max.Y; y++ {
		for x := b.Min.X; x <= b.Max.X; x++ {
			v, ok := s.cells[Coord{x, y}]
			sb.WriteRune(glyph(v, ok))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

package grid

import "fmt"

// Dense is a fixed rectangular board backed by a row-major slice.
// Use it when the domain is a rectangle known up front.
type Dense[T any] struct {
	bounds Bounds
	cells  []T
}

// NewDense allocates a w×h board anchored at the origin, every cell zero.
// Returns ErrEmptyBounds if w or h is not positive.
// Complexity: O(W×H) time and memory.
func NewDense[T any](w, h int) (*Dense[T], error) {
	b, err := Rect(w, h)
	if err != nil {
		return nil, err
	}

	return &Dense[T]{bounds: b, cells: make([]T, b.Area())}, nil
}

// FromRows builds a board from a non-empty rectangular 2D slice, rows[y][x].
// It deep-copies the input.
// Returns ErrEmptyBounds for no rows or no columns,
// ErrNonRectangular if any row length differs.
func FromRows[T any](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyBounds
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	d, err := NewDense[T](w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		copy(d.cells[y*w:(y+1)*w], row)
	}

	return d, nil
}

// Bounds returns the rectangle covered by the board.
func (d *Dense[T]) Bounds() Bounds { return d.bounds }

// InBounds reports whether c lies on the board.
func (d *Dense[T]) InBounds(c Coord) bool { return d.bounds.Contains(c) }

// At returns the value at c. It panics if c is out of bounds.
func (d *Dense[T]) At(c Coord) T {
	d.mustContain(c)

	return d.cells[d.bounds.Index(c)]
}

// Lookup returns the value at c and whether c is on the board.
func (d *Dense[T]) Lookup(c Coord) (T, bool) {
	if !d.bounds.Contains(c) {
		var zero T
		return zero, false
	}

	return d.cells[d.bounds.Index(c)], true
}

// Set stores v at c. It panics if c is out of bounds.
func (d *Dense[T]) Set(c Coord, v T) {
	d.mustContain(c)
	d.cells[d.bounds.Index(c)] = v
}

// Neighbors returns the in-bounds neighbors of c under conn.
func (d *Dense[T]) Neighbors(c Coord, conn Connectivity) []Coord {
	out := make([]Coord, 0, len(conn.Offsets()))
	for _, o := range conn.Offsets() {
		if n := c.Add(o); d.bounds.Contains(n) {
			out = append(out, n)
		}
	}

	return out
}

// Find returns every coordinate whose value satisfies pred, row-major.
func (d *Dense[T]) Find(pred func(T) bool) []Coord {
	var out []Coord
	for i, v := range d.cells {
		if pred(v) {
			out = append(out, d.bounds.Coord(i))
		}
	}

	return out
}

func (d *Dense[T]) mustContain(c Coord) {
	if !d.bounds.Contains(c) {
		panic(fmt.Sprintf("grid: %v outside %v..%v", c, d.bounds.Min, d.bounds.Max))
	}
}

package grid

// Bounds is an inclusive axis-aligned rectangle [Min.X..Max.X]×[Min.Y..Max.Y].
type Bounds struct {
	Min, Max Coord
}

// NewBounds builds the rectangle spanning min and max inclusive.
// Returns ErrEmptyBounds if max lies before min on either axis.
func NewBounds(min, max Coord) (Bounds, error) {
	if max.X < min.X || max.Y < min.Y {
		return Bounds{}, ErrEmptyBounds
	}

	return Bounds{Min: min, Max: max}, nil
}

// Rect returns the w×h rectangle anchored at the origin.
// Returns ErrEmptyBounds if w or h is not positive.
func Rect(w, h int) (Bounds, error) {
	if w <= 0 || h <= 0 {
		return Bounds{}, ErrEmptyBounds
	}

	return Bounds{Max: Coord{w - 1, h - 1}}, nil
}

// BoundsOf returns the smallest rectangle containing every coordinate.
// ok is false when coords is empty.
func BoundsOf(coords []Coord) (b Bounds, ok bool) {
	if len(coords) == 0 {
		return Bounds{}, false
	}
	b = Bounds{Min: coords[0], Max: coords[0]}
	for _, c := range coords[1:] {
		b = b.Extend(c)
	}

	return b, true
}

// Extend returns the smallest rectangle containing b and c.
func (b Bounds) Extend(c Coord) Bounds {
	b.Min.X, b.Min.Y = min(b.Min.X, c.X), min(b.Min.Y, c.Y)
	b.Max.X, b.Max.Y = max(b.Max.X, c.X), max(b.Max.Y, c.Y)

	return b
}

// Contains reports whether c lies within b.
// Complexity: O(1).
func (b Bounds) Contains(c Coord) bool {
	return c.X >= b.Min.X && c.X <= b.Max.X && c.Y >= b.Min.Y && c.Y <= b.Max.Y
}

// Width is the number of columns.
func (b Bounds) Width() int { return b.Max.X - b.Min.X + 1 }

// Height is the number of rows.
func (b Bounds) Height() int { return b.Max.Y - b.Min.Y + 1 }

// Area is Width×Height.
func (b Bounds) Area() int { return b.Width() * b.Height() }

// Index maps c to a row-major index relative to b.Min.
// The result is meaningless when c is outside b.
// Complexity: O(1).
func (b Bounds) Index(c Coord) int {
	return (c.Y-b.Min.Y)*b.Width() + (c.X - b.Min.X)
}

// Coord converts a row-major index back to a coordinate.
// Complexity: O(1).
func (b Bounds) Coord(idx int) Coord {
	w := b.Width()

	return Coord{b.Min.X + idx%w, b.Min.Y + idx/w}
}

// Each calls fn for every cell of b in row-major order until fn returns false.
func (b Bounds) Each(fn func(Coord) bool) {
	for y := b.Min.Y; y <= b.Max.Y; y++ {
		for x := b.Min.X; x <= b.Max.X; x++ {
			if !fn(Coord{x, y}) {
				return
			}
		}
	}
}

package grid

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyBounds indicates a rectangle with no cells (Max < Min on an axis).
	ErrEmptyBounds = errors.New("grid: bounds must contain at least one cell")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = []Coord{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = []Coord{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbor deltas for the connectivity, clockwise from north.
// The returned slice is shared; callers must not modify it.
func (c Connectivity) Offsets() []Coord {
	if c == Conn8 {
		return offsets8
	}

	return offsets4
}

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// Coord identifies a cell in a discrete 2D space.
// Y grows downwards, matching the row order of puzzle text.
type Coord struct {
	X, Y int
}

// Direction is a closed set of the four orthogonal moves.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

var directionDeltas = [...]Coord{Up: {0, -1}, Right: {1, 0}, Down: {0, 1}, Left: {-1, 0}}

// Delta returns the unit step for d.
func (d Direction) Delta() Coord {
	return directionDeltas[d&3]
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d & 3 {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	default:
		return "left"
	}
}

// AbsDiff returns |x-y|.
func AbsDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}

	return v
}

// Sign returns -1, 0 or 1 according to the sign of v.
func Sign[T constraints.Signed](v T) T {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

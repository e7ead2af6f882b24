package grid

import "fmt"

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Add returns c+d.
func (c Coord) Add(d Coord) Coord {
	return Coord{c.X + d.X, c.Y + d.Y}
}

// Sub returns c-d.
func (c Coord) Sub(d Coord) Coord {
	return Coord{c.X - d.X, c.Y - d.Y}
}

// Step returns the neighbor of c in direction d.
func (c Coord) Step(d Direction) Coord {
	return c.Add(d.Delta())
}

// Manhattan returns the L1 distance between c and d.
// It is an admissible heuristic for unit-cost Conn4 movement.
func (c Coord) Manhattan(d Coord) int {
	return AbsDiff(c.X, d.X) + AbsDiff(c.Y, d.Y)
}

// Chebyshev returns the L∞ distance between c and d.
// It is an admissible heuristic for unit-cost Conn8 movement.
func (c Coord) Chebyshev(d Coord) int {
	return max(AbsDiff(c.X, d.X), AbsDiff(c.Y, d.Y))
}

// Toward returns the coordinate one step from c in the direction of d,
// moving at most one unit on each axis.
func (c Coord) Toward(d Coord) Coord {
	return Coord{c.X + Sign(d.X-c.X), c.Y + Sign(d.Y-c.Y)}
}

// Neighbors appends the neighbors of c under conn to dst and returns it.
// No bounds are applied.
func (c Coord) Neighbors(dst []Coord, conn Connectivity) []Coord {
	for _, o := range conn.Offsets() {
		dst = append(dst, c.Add(o))
	}

	return dst
}

// Neighbors4 returns the four orthogonal neighbors of c, clockwise from north.
func (c Coord) Neighbors4() []Coord {
	return c.Neighbors(make([]Coord, 0, 4), Conn4)
}

// Neighbors8 returns all eight neighbors of c, clockwise from north.
func (c Coord) Neighbors8() []Coord {
	return c.Neighbors(make([]Coord, 0, 8), Conn8)
}

// Less orders coordinates row-major: by Y, then by X.
func (c Coord) Less(d Coord) bool {
	if c.Y != d.Y {
		return c.Y < d.Y
	}

	return c.X < d.X
}

// String formats c as "x,y", the same form used for vertex IDs in lvlath.
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

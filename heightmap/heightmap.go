package heightmap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlath-aoc/astar"
	"github.com/katalvlaran/lvlath-aoc/grid"
)

// Parse builds a HeightMap from text rows.
// Returns ErrEmptyMap, ErrNonRectangular, ErrUnknownCell (wrapped with the
// offending position), ErrNoStart, ErrNoEnd or ErrDuplicateMarker.
// Complexity: O(W×H).
func Parse(lines []string, opts ...Option) (*HeightMap, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyMap
	}
	w := len(lines[0])
	for _, l := range lines {
		if len(l) != w {
			return nil, ErrNonRectangular
		}
	}
	elev, err := grid.NewDense[int](w, len(lines))
	if err != nil {
		return nil, err
	}

	hm := defaultHeightMap()
	for _, opt := range opts {
		opt(hm)
	}
	var seenS, seenE bool
	for y, line := range lines {
		for x := 0; x < len(line); x++ {
			c := grid.C(x, y)
			switch r := line[x]; {
			case r >= 'a' && r <= 'z':
				elev.Set(c, int(r-'a'))
			case r == 'S':
				if seenS {
					return nil, fmt.Errorf("%w: second 'S' at %v", ErrDuplicateMarker, c)
				}
				seenS, hm.start = true, c
				elev.Set(c, Lowest)
			case r == 'E':
				if seenE {
					return nil, fmt.Errorf("%w: second 'E' at %v", ErrDuplicateMarker, c)
				}
				seenE, hm.end = true, c
				elev.Set(c, Highest)
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownCell, r, c)
			}
		}
	}
	if !seenS {
		return nil, ErrNoStart
	}
	if !seenE {
		return nil, ErrNoEnd
	}
	hm.elev = elev

	return hm, nil
}

// Start returns the 'S' cell.
func (h *HeightMap) Start() grid.Coord { return h.start }

// End returns the 'E' cell.
func (h *HeightMap) End() grid.Coord { return h.end }

// Bounds returns the rectangle covered by the map.
func (h *HeightMap) Bounds() grid.Bounds { return h.elev.Bounds() }

// Elevation returns the height at c and whether c is on the map.
func (h *HeightMap) Elevation(c grid.Coord) (int, bool) {
	return h.elev.Lookup(c)
}

// CanClimb reports whether a single step from one cell to an adjacent one is allowed:
// up by at most MaxClimb, down by any amount. Off-map cells are never climbable.
func (h *HeightMap) CanClimb(from, to grid.Coord) bool {
	ef, okFrom := h.elev.Lookup(from)
	et, okTo := h.elev.Lookup(to)

	return okFrom && okTo && et-ef <= MaxClimb
}

// canDescend is CanClimb reversed, for searches that run from the summit down.
func (h *HeightMap) canDescend(from, to grid.Coord) bool {
	return h.CanClimb(to, from)
}

// LowestCells returns every cell at elevation Lowest, row-major ('S' included).
func (h *HeightMap) LowestCells() []grid.Coord {
	return h.elev.Find(func(e int) bool { return e == Lowest })
}

// Path returns a shortest climbing route from one cell to another.
// Returns ErrOffMap if either end lies outside the map and astar.ErrNoPath
// when to cannot be reached.
func (h *HeightMap) Path(from, to grid.Coord) ([]grid.Coord, error) {
	for _, c := range [...]grid.Coord{from, to} {
		if !h.elev.InBounds(c) {
			return nil, fmt.Errorf("%w: %v outside %dx%d", ErrOffMap, c, h.Bounds().Width(), h.Bounds().Height())
		}
	}
	res, err := astar.Search(from, to,
		astar.GridNeighbors(h.Bounds(), grid.Conn4, h.CanClimb),
		astar.WithHeuristic(astar.ManhattanTo(to)),
		astar.WithLess(astar.RowMajor),
		astar.WithLogger[grid.Coord](h.log),
	)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// ShortestClimb returns the fewest steps from 'S' to 'E'.
func (h *HeightMap) ShortestClimb() (int, error) {
	path, err := h.Path(h.start, h.end)
	if err != nil {
		return 0, err
	}

	return len(path) - 1, nil
}

// ShortestHike returns the fewest steps from any lowest cell to 'E' and the
// lowest cell it starts from.
//
// One backward search from 'E' with the reversed step rule stops at the first
// lowest cell popped. Elevation itself is an admissible heuristic: walking
// backward, each step lowers elevation by at most MaxClimb.
func (h *HeightMap) ShortestHike() (steps int, from grid.Coord, err error) {
	res, err := astar.SearchFunc([]grid.Coord{h.end},
		func(c grid.Coord) bool { return h.elev.At(c) == Lowest },
		astar.GridNeighbors(h.Bounds(), grid.Conn4, h.canDescend),
		astar.WithHeuristic(func(c grid.Coord) int { return h.elev.At(c) / MaxClimb }),
		astar.WithLess(astar.RowMajor),
		astar.WithLogger[grid.Coord](h.log),
	)
	if err != nil {
		return 0, grid.Coord{}, err
	}

	return res.Steps(), res.Goal(), nil
}

// ShortestHikeEach answers ShortestHike by one forward search per lowest cell.
// Starts that cannot reach 'E' are skipped; if none can, astar.ErrNoPath is returned.
func (h *HeightMap) ShortestHikeEach() (int, error) {
	best := -1
	for _, s := range h.LowestCells() {
		path, err := h.Path(s, h.end)
		if errors.Is(err, astar.ErrNoPath) {
			continue
		}
		if err != nil {
			return 0, err
		}
		if steps := len(path) - 1; best < 0 || steps < best {
			best = steps
		}
	}
	if best < 0 {
		return 0, astar.ErrNoPath
	}

	return best, nil
}

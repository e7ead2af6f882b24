package heightmap

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlath-aoc/grid"
	"github.com/katalvlaran/lvlath-aoc/logger"
)

// Sentinel errors for heightmap parsing.
var (
	// ErrEmptyMap indicates no rows or an empty first row.
	ErrEmptyMap = errors.New("heightmap: map must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("heightmap: all rows must have the same length")
	// ErrUnknownCell indicates a rune outside 'a'..'z', 'S', 'E'.
	ErrUnknownCell = errors.New("heightmap: unknown cell")
	// ErrNoStart indicates the map has no 'S'.
	ErrNoStart = errors.New("heightmap: no start marker")
	// ErrNoEnd indicates the map has no 'E'.
	ErrNoEnd = errors.New("heightmap: no end marker")
	// ErrDuplicateMarker indicates more than one 'S' or 'E'.
	ErrDuplicateMarker = errors.New("heightmap: duplicate marker")
	// ErrOffMap indicates a query coordinate outside the map.
	ErrOffMap = errors.New("heightmap: coordinate off the map")
)

const (
	// Lowest is the elevation of 'a' and 'S'.
	Lowest = 0
	// Highest is the elevation of 'z' and 'E'.
	Highest = 25
	// MaxClimb is the largest upward step allowed.
	MaxClimb = 1
)

// HeightMap is an immutable elevation grid with its two markers.
type HeightMap struct {
	elev  *grid.Dense[int]
	start grid.Coord
	end   grid.Coord
	log   logrus.FieldLogger
}

// Option configures a HeightMap.
type Option func(*HeightMap)

// WithLogger routes search summaries to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(h *HeightMap) {
		if l != nil {
			h.log = l
		}
	}
}

func defaultHeightMap() *HeightMap {
	return &HeightMap{log: logger.Discard()}
}

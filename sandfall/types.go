package sandfall

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlath-aoc/grid"
	"github.com/katalvlaran/lvlath-aoc/logger"
)

var (
	// ErrNoRock indicates a cave description without any rock.
	ErrNoRock = errors.New("sandfall: cave has no rock")

	// ErrBadSegment indicates an unparsable point or a non axis-aligned segment.
	ErrBadSegment = errors.New("sandfall: bad rock segment")

	// ErrBadMode indicates an unknown Mode.
	ErrBadMode = errors.New("sandfall: unknown mode")
)

// Spawn is the default point where grains enter the cave.
var Spawn = grid.C(500, 0)

// Cell is the content of an occupied position.
type Cell uint8

const (
	// Rock is part of the cave structure.
	Rock Cell = iota + 1
	// Sand is a grain at rest.
	Sand
)

// Glyph returns the character used by Render.
func (c Cell) Glyph() rune {
	switch c {
	case Rock:
		return '#'
	case Sand:
		return 'o'
	default:
		return '?'
	}
}

// Mode selects how a run ends.
type Mode int

const (
	// Abyss ends the run when a grain falls past the lowest rock.
	Abyss Mode = iota
	// Floor adds a floor two rows below the lowest rock and ends the run
	// when the spawn point is covered.
	Floor
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Abyss:
		return "abyss"
	case Floor:
		return "floor"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Options configures a Cave.
type Options struct {
	Mode   Mode
	Spawn  grid.Coord
	Logger logrus.FieldLogger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Abyss mode with the default spawn point and a
// discarding logger.
func DefaultOptions() Options {
	return Options{Mode: Abyss, Spawn: Spawn, Logger: logger.Discard()}
}

// WithMode selects Abyss or Floor.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithSpawn moves the entry point.
func WithSpawn(c grid.Coord) Option {
	return func(o *Options) { o.Spawn = c }
}

// WithLogger routes the run summary to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

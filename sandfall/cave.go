package sandfall

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlath-aoc/grid"
	"github.com/katalvlaran/lvlath-aoc/logger"
)

// Cave holds rock and resting sand.
type Cave struct {
	board  *grid.Sparse[Cell]
	opts   Options
	lowest int // largest rock Y
	rock   int
	grains int
	done   bool
	log    logrus.FieldLogger
}

// New builds a cave from rock paths as returned by ParsePaths.
func New(paths [][]grid.Coord, opts ...Option) (*Cave, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Mode != Abyss && o.Mode != Floor {
		return nil, fmt.Errorf("%w: %v", ErrBadMode, o.Mode)
	}

	c := &Cave{
		board: grid.NewSparse[Cell](1024),
		opts:  o,
		log:   logger.Component(o.Logger, "sandfall"),
	}
	for _, path := range paths {
		for i, p := range path {
			if i == 0 {
				c.board.Set(p, Rock)
				continue
			}
			prev := path[i-1]
			if prev.X != p.X && prev.Y != p.Y {
				return nil, fmt.Errorf("%w: %v -> %v is diagonal", ErrBadSegment, prev, p)
			}
			for q := prev; q != p; {
				q = q.Toward(p)
				c.board.Set(q, Rock)
			}
		}
	}
	if c.board.Len() == 0 {
		return nil, ErrNoRock
	}
	c.rock = c.board.Len()
	b, _ := c.board.Bounds()
	c.lowest = b.Max.Y

	return c, nil
}

// Parse is ParsePaths followed by New.
func Parse(text string, opts ...Option) (*Cave, error) {
	paths, err := ParsePaths(text)
	if err != nil {
		return nil, err
	}

	return New(paths, opts...)
}

// Mode returns the configured mode.
func (c *Cave) Mode() Mode { return c.opts.Mode }

// Lowest returns the Y of the lowest rock.
func (c *Cave) Lowest() int { return c.lowest }

// Grains returns the number of grains at rest.
func (c *Cave) Grains() int { return c.grains }

// At returns the content of p and whether p is occupied. The Floor mode
// floor is not stored and is not reported.
func (c *Cave) At(p grid.Coord) (Cell, bool) {
	return c.board.Get(p)
}

// blocked reports whether a grain cannot enter p.
func (c *Cave) blocked(p grid.Coord) bool {
	if c.opts.Mode == Floor && p.Y >= c.lowest+2 {
		return true
	}

	return c.board.Has(p)
}

// fall returns the cell a grain at p moves to: straight down, else
// down-left, else down-right. moved is false when all three are blocked.
func (c *Cave) fall(p grid.Coord) (next grid.Coord, moved bool) {
	below := p.Step(grid.Down)
	for _, q := range [...]grid.Coord{below, below.Step(grid.Left), below.Step(grid.Right)} {
		if !c.blocked(q) {
			return q, true
		}
	}

	return p, false
}

// Drop releases one grain and returns where it came to rest. ok is false
// when the run is over: the grain fell into the abyss or the spawn point is
// already covered. Once Drop has returned false it keeps doing so.
func (c *Cave) Drop() (rest grid.Coord, ok bool) {
	if c.done || c.board.Has(c.opts.Spawn) {
		c.done = true
		return grid.Coord{}, false
	}

	p := c.opts.Spawn
	for {
		if c.opts.Mode == Abyss && p.Y > c.lowest {
			c.done = true
			return grid.Coord{}, false
		}
		next, moved := c.fall(p)
		if !moved {
			break
		}
		p = next
	}
	c.board.Set(p, Sand)
	c.grains++

	return p, true
}

// Run drops grains until the run ends and returns the number at rest.
func (c *Cave) Run() int {
	for {
		if _, ok := c.Drop(); !ok {
			break
		}
	}
	c.log.WithFields(logrus.Fields{
		"mode":   c.opts.Mode,
		"rock":   c.rock,
		"grains": c.grains,
		"lowest": c.lowest,
	}).Debug("sand settled")

	return c.grains
}

// Sand returns the resting grains in row-major order.
func (c *Cave) Sand() []grid.Coord {
	var out []grid.Coord
	for _, k := range c.board.Keys() {
		if v, _ := c.board.Get(k); v == Sand {
			out = append(out, k)
		}
	}

	return out
}

// Render draws the occupied area and the spawn point ('+' while free), one
// row per line. Air is '.'. In Floor mode the floor row is included.
func (c *Cave) Render() string {
	b, _ := c.board.Bounds()
	b = b.Extend(c.opts.Spawn)
	if c.opts.Mode == Floor {
		b = b.Extend(grid.C(b.Min.X, c.lowest+2))
	}

	out := []byte(c.board.Render(b, func(v Cell, ok bool) rune {
		if !ok {
			return '.'
		}
		return v.Glyph()
	}))
	if !c.board.Has(c.opts.Spawn) {
		out[(c.opts.Spawn.Y-b.Min.Y)*(b.Width()+1)+c.opts.Spawn.X-b.Min.X] = '+'
	}
	if c.opts.Mode == Floor {
		row := (c.lowest + 2 - b.Min.Y) * (b.Width() + 1)
		for x := 0; x < b.Width(); x++ {
			out[row+x] = '#'
		}
	}

	return string(out)
}

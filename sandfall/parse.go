package sandfall

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath-aoc/grid"
)

// ParsePaths reads one rock path per non-blank line. Each path is a list of
// "x,y" points separated by "->".
func ParsePaths(text string) ([][]grid.Coord, error) {
	var paths [][]grid.Coord
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var path []grid.Coord
		for _, field := range strings.Split(line, "->") {
			p, err := parsePoint(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n+1, err)
			}
			if len(path) > 0 {
				if last := path[len(path)-1]; last.X != p.X && last.Y != p.Y {
					return nil, fmt.Errorf("line %d: %w: %v -> %v is diagonal", n+1, ErrBadSegment, last, p)
				}
			}
			path = append(path, p)
		}
		paths = append(paths, path)
	}
	if len(paths) == 0 {
		return nil, ErrNoRock
	}

	return paths, nil
}

func parsePoint(s string) (grid.Coord, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Coord{}, fmt.Errorf("%w: %q", ErrBadSegment, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return grid.Coord{}, fmt.Errorf("%w: %q", ErrBadSegment, s)
	}

	return grid.C(x, y), nil
}

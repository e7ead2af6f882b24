package heightmap_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvlath-aoc/heightmap"
)

// ramp builds a w×h map that climbs one letter per column, with S at the
// left and E at the far right.
func ramp(w, h int) []string {
	rows := make([]string, h)
	for y := range rows {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			sb.WriteByte(byte('a' + min(x*26/w, 25)))
		}
		rows[y] = sb.String()
	}
	rows[0] = "S" + rows[0][1:]
	rows[h-1] = rows[h-1][:w-1] + "E"

	return rows
}

// BenchmarkShortestHike measures the single backward search on a 200×100 ramp.
func BenchmarkShortestHike(b *testing.B) {
	hm, err := heightmap.Parse(ramp(200, 100))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = hm.ShortestHike()
	}
}

// BenchmarkShortestHikeEach measures one forward search per lowest cell.
func BenchmarkShortestHikeEach(b *testing.B) {
	hm, err := heightmap.Parse(ramp(200, 100))
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = hm.ShortestHikeEach()
	}
}

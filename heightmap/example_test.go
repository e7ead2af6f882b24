package heightmap_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-aoc/heightmap"
)

// ExampleHeightMap_ShortestClimb answers both climbing questions.
func ExampleHeightMap_ShortestClimb() {
	hm, err := heightmap.Parse([]string{
		"Sabqponm",
		"abcryxxl",
		"accszExk",
		"acctuvwj",
		"abdefghi",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	climb, _ := hm.ShortestClimb()
	hike, _, _ := hm.ShortestHike()
	fmt.Println(climb, hike)
	// Output: 31 29
}

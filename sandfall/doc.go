// Package sandfall simulates grains of sand settling in a cave of rock.
//
// The cave is a sparse board: only rock and resting sand are stored, and
// everything else is air. Rock comes from path descriptions such as
//
//	498,4 -> 498,6 -> 496,6
//
// where consecutive points are joined by horizontal or vertical lines.
//
// Grains enter one at a time at the spawn point (500,0 by default). A grain
// moves down if it can, otherwise down-left, otherwise down-right, and
// rests when all three are blocked. Y grows downwards.
//
// Modes:
//
//   - Abyss: there is no floor. The run ends with the first grain that drops
//     below the lowest rock, since nothing can stop it any more.
//   - Floor: an endless floor lies two rows below the lowest rock. The run
//     ends once a grain rests on the spawn point.
//
// Run reports the number of grains at rest when the run ended.
//
// Errors:
//
//   - ErrBadSegment: malformed point or a diagonal segment.
//   - ErrNoRock:     the description holds no rock.
package sandfall

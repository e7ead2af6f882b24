// Package heightmap models an elevation grid and answers shortest-climb
// questions on it with the astar package.
//
// Cells are 'a'..'z' (elevation 0..25), 'S' marks the start (elevation of 'a')
// and 'E' the summit (elevation of 'z'). A step goes to an orthogonal
// neighbor and may climb at most one unit; descending any amount is allowed.
// The step rule is therefore asymmetric, and searching backward from the
// summit uses the reversed rule.
//
// Queries:
//
//   - ShortestClimb: fewest steps from S to E.
//   - ShortestHike:  fewest steps from any lowest cell to E, answered by a
//     single backward search from E that stops at the first lowest cell.
//   - ShortestHikeEach: the same answer computed by one forward search per
//     lowest cell. Slower; kept as the reference for ShortestHike.
package heightmap

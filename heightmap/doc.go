// Package heightmap treats a rectangular block of elevation digits as an
// immutable, bounds-checked 2D grid.
//
// What:
//
//   - HeightMap stores rows×cols elevations (0..9) in flat row-major order.
//   - Parse / Read build a map from text: one digit per character, one row per line.
//   - New builds a map from an already-parsed [][]int grid (deep copy).
//   - Get / At answer "absent" for any coordinate outside the map, including
//     negative ones produced by neighbor arithmetic.
//   - Neighbors yields the in-bounds 4-neighbors (N, E, S, W) of a cell.
//
// Why:
//
//   - Terrain analysis: low points, drainage basins, ridge detection.
//   - Absence is a value, not an error: map edges act as infinitely high walls.
//
// Complexity:
//
//   - Parse / New: O(W×H) time and memory.
//   - Get, At, InBounds, Index, Coordinate: O(1).
//
// Errors:
//
//   - ErrMalformedGrid: umbrella for every construction failure.
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: a row differs in length from the first row.
//   - ErrInvalidElevation: a character is not a decimal digit, or a value is outside [0,9].
//
// Text input errors are reported as *ParseError, which carries the 1-based
// line and column of the offending character.
package heightmap

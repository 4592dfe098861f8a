// Package basins is a terrain analysis toolkit for rectangular elevation maps:
// it finds the local minima ("low points") of a grid of digits 0-9 and the
// drainage basins that flow into them.
//
// What is in the box?
//
//   - heightmap/ - immutable, bounds-checked elevation grid; text parsing
//   - lowpoint/  - low point detection and risk level scoring
//   - basin/     - iterative 4-directional flood fill, parallel exploration,
//     overlap detection
//   - rank/      - size ranking, top-N product, summary statistics
//   - analysis/  - one-call driver producing a Report
//   - render/    - terminal table and map, PNG map, histogram, JSON/YAML export
//   - metrics/   - Prometheus instruments for analysis runs
//   - config/    - YAML / environment configuration
//   - cmd/basins - the command-line tool
//
// Quick ASCII example:
//
//	2199943210
//	3987894921
//	9856789892
//	8767896789
//	9899965678
//
// has four low points (risk level sum 15) and basins of 3, 9, 14 and 9
// cells; the three largest multiply to 1134.
//
//	go install github.com/katalvlaran/basins/cmd/basins@latest
//	basins analyze map.txt --map
package basins

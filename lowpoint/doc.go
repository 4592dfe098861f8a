// Package lowpoint finds the local minima of a heightmap.HeightMap and
// scores them.
//
// A cell is a low point when its elevation is strictly lower than every
// in-bounds 4-neighbor. Cells beyond the map edge never disqualify a
// candidate, and a tie with any neighbor always does.
//
// Complexity: Find and RiskLevelSum run in O(W×H) time; Find allocates
// only the result slice.
package lowpoint

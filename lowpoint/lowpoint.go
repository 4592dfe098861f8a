package lowpoint

import "github.com/katalvlaran/basins/heightmap"

// Find scans hm in row-major order (y outer, x inner) and returns every
// low point in that order. A nil map has no low points.
func Find(hm *heightmap.HeightMap) []heightmap.Point {
	if hm == nil {
		return nil
	}
	var out []heightmap.Point
	rows, cols := hm.Dimensions()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := heightmap.Point{X: x, Y: y}
			if IsLowPoint(hm, p) {
				out = append(out, p)
			}
		}
	}

	return out
}

// IsLowPoint reports whether p lies on the map and is strictly lower than
// all of its in-bounds 4-neighbors.
func IsLowPoint(hm *heightmap.HeightMap, p heightmap.Point) bool {
	depth, ok := hm.At(p)
	if !ok {
		return false
	}
	for _, d := range heightmap.Offsets {
		n, ok := hm.Get(p.X+d[0], p.Y+d[1])
		if !ok {
			continue // map edge is a wall
		}
		if n <= depth {
			return false
		}
	}

	return true
}

// RiskLevel is the elevation of p plus one, or 0 when p is off the map.
func RiskLevel(hm *heightmap.HeightMap, p heightmap.Point) int {
	v, ok := hm.At(p)
	if !ok {
		return 0
	}

	return v + 1
}

// SumRiskLevels adds up the risk levels of points.
func SumRiskLevels(hm *heightmap.HeightMap, points []heightmap.Point) int {
	sum := 0
	for _, p := range points {
		sum += RiskLevel(hm, p)
	}

	return sum
}

// RiskLevelSum is the map-wide score: the risk levels of all low points.
func RiskLevelSum(hm *heightmap.HeightMap) int {
	return SumRiskLevels(hm, Find(hm))
}

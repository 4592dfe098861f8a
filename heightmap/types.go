package heightmap

import "fmt"

// Elevation bounds and the ridge sentinel.
const (
	// MinElevation is the lowest representable elevation.
	MinElevation = 0
	// MaxElevation is the highest representable elevation.
	MaxElevation = 9
	// Ridge is the elevation that never belongs to any basin.
	Ridge = MaxElevation
)

// Point is a cell coordinate: X is the column, Y is the row, both 0-based.
// Points are comparable and may be used as map keys.
type Point struct {
	X, Y int
}

// String formats the point as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Add returns p shifted by (dx, dy). The result may lie outside any map.
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Offsets lists the 4-connectivity steps in N, E, S, W order.
var Offsets = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// HeightMap is an immutable rectangular elevation grid.
// cells[y*cols+x] holds the elevation of Point{x, y}.
type HeightMap struct {
	rows, cols int
	cells      []int
}

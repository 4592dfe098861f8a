// File: basin/example_test.go
package basin_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/basins/basin"
	"github.com/katalvlaran/basins/heightmap"
	"github.com/katalvlaran/basins/lowpoint"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Explore
////////////////////////////////////////////////////////////////////////////////

// ExampleExplore grows the basin of the top-left low point of a small map.
//
//	2199
//	3987
//
// The 9s wall the low point (1,0) off, leaving three cells.
func ExampleExplore() {
	hm, _ := heightmap.Parse("2199\n3987")

	b, err := basin.Explore(hm, heightmap.Point{X: 1, Y: 0}, basin.WithFrontier(basin.Queue))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("size:", b.Size())
	fmt.Println("cells:", b.Points())

	// Output:
	// size: 3
	// cells: [0,0 1,0 0,1]
}

////////////////////////////////////////////////////////////////////////////////
// Example: ExploreAll
////////////////////////////////////////////////////////////////////////////////

// ExampleExploreAll explores every basin of the canonical map in parallel.
func ExampleExploreAll() {
	hm, _ := heightmap.Parse("2199943210\n3987894921\n9856789892\n8767896789\n9899965678")

	basins, err := basin.ExploreAll(context.Background(), hm, lowpoint.Find(hm), basin.WithWorkers(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, b := range basins {
		fmt.Printf("%v: %d\n", b.Origin, b.Size())
	}
	fmt.Println("disjoint:", basin.Disjoint(basins))

	// Output:
	// 1,0: 3
	// 9,0: 9
	// 2,2: 14
	// 6,4: 9
	// disjoint: true
}

package basin

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/basins/heightmap"
)

// Overlap names two basins, by index, that share cells.
type Overlap struct {
	A, B   int
	Shared []heightmap.Point
}

// Overlaps returns every pair of basins with at least one common cell,
// ordered by (A, B) with A < B. Shared cells are in row-major order.
// All basins must come from the same map.
//
// Ridges normally separate low points, so a clean input yields no overlaps;
// a non-empty result means ranking by size counts some cells twice.
func Overlaps(basins []Basin) []Overlap {
	owners := make(map[int][]int)
	for bi, b := range basins {
		for _, c := range b.cells {
			owners[c] = append(owners[c], bi)
		}
	}

	shared := make(map[[2]int][]int)
	for c, bs := range owners {
		for i := 0; i < len(bs); i++ {
			for j := i + 1; j < len(bs); j++ {
				key := [2]int{bs[i], bs[j]}
				shared[key] = append(shared[key], c)
			}
		}
	}
	if len(shared) == 0 {
		return nil
	}

	out := make([]Overlap, 0, len(shared))
	for key, cells := range shared {
		slices.Sort(cells)
		cols := basins[key[0]].cols
		pts := make([]heightmap.Point, len(cells))
		for i, c := range cells {
			pts[i] = heightmap.Point{X: c % cols, Y: c / cols}
		}
		out = append(out, Overlap{A: key[0], B: key[1], Shared: pts})
	}
	slices.SortFunc(out, func(x, y Overlap) int {
		if c := cmp.Compare(x.A, y.A); c != 0 {
			return c
		}
		return cmp.Compare(x.B, y.B)
	})

	return out
}

// Disjoint reports whether no cell belongs to more than one basin.
func Disjoint(basins []Basin) bool {
	seen := make(map[int]struct{})
	for _, b := range basins {
		for _, c := range b.cells {
			if _, dup := seen[c]; dup {
				return false
			}
			seen[c] = struct{}{}
		}
	}

	return true
}

// Labels returns one entry per cell of hm in row-major order: the index of
// the basin owning the cell, or -1. When basins overlap the later one wins.
func Labels(hm *heightmap.HeightMap, basins []Basin) []int {
	if hm == nil {
		return nil
	}
	labels := make([]int, hm.Len())
	for i := range labels {
		labels[i] = -1
	}
	for bi, b := range basins {
		for _, c := range b.cells {
			if c < len(labels) {
				labels[c] = bi
			}
		}
	}

	return labels
}

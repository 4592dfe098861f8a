package lowpoint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/basins/heightmap"
	"github.com/katalvlaran/basins/lowpoint"
)

const exampleMap = `2199943210
3987894921
9856789892
8767896789
9899965678`

func mustParse(t *testing.T, text string) *heightmap.HeightMap {
	t.Helper()
	hm, err := heightmap.Parse(text)
	require.NoError(t, err)
	return hm
}

// TestFind_Example checks the canonical grid: four low points in scan order.
func TestFind_Example(t *testing.T) {
	hm := mustParse(t, exampleMap)

	want := []heightmap.Point{{X: 1, Y: 0}, {X: 9, Y: 0}, {X: 2, Y: 2}, {X: 6, Y: 4}}
	assert.Equal(t, want, lowpoint.Find(hm))
	assert.Equal(t, 15, lowpoint.RiskLevelSum(hm))
}

// TestFind_Strictness verifies that every reported low point is strictly
// lower than each in-bounds neighbor and that no other cell qualifies.
func TestFind_Strictness(t *testing.T) {
	hm := mustParse(t, exampleMap)
	found := make(map[heightmap.Point]bool)
	for _, p := range lowpoint.Find(hm) {
		found[p] = true
	}

	rows, cols := hm.Dimensions()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := heightmap.Point{X: x, Y: y}
			v, _ := hm.At(p)
			lower := true
			for _, n := range hm.Neighbors(p) {
				nv, _ := hm.At(n)
				if v >= nv {
					lower = false
				}
			}
			assert.Equal(t, lower, found[p], "cell %v", p)
		}
	}
}

// TestFind_Ties ensures equal neighbors disqualify both cells.
func TestFind_Ties(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []heightmap.Point
	}{
		{"Plateau", "11\n11", nil},
		{"PairTie", "115\n999", nil},
		{"Single", "5", []heightmap.Point{{X: 0, Y: 0}}},
		{"Corner", "09\n99", []heightmap.Point{{X: 0, Y: 0}}},
		{"Row", "2123", []heightmap.Point{{X: 1, Y: 0}}},
		{"NineIsNeverLowWithNeighbors", "99", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, lowpoint.Find(mustParse(t, tc.text)))
		})
	}
}

// TestRiskLevel_Degenerate covers the single-cell map and off-map points.
func TestRiskLevel_Degenerate(t *testing.T) {
	hm := mustParse(t, "5")
	assert.Equal(t, 6, lowpoint.RiskLevelSum(hm))
	assert.Equal(t, 0, lowpoint.RiskLevel(hm, heightmap.Point{X: -1, Y: 0}))
	assert.False(t, lowpoint.IsLowPoint(hm, heightmap.Point{X: 1, Y: 0}))
	assert.Nil(t, lowpoint.Find(nil))
}

// TestSumRiskLevels sums an explicit point list.
func TestSumRiskLevels(t *testing.T) {
	hm := mustParse(t, exampleMap)
	pts := []heightmap.Point{{X: 1, Y: 0}, {X: 9, Y: 0}}
	assert.Equal(t, 3, lowpoint.SumRiskLevels(hm, pts))
	assert.Equal(t, 0, lowpoint.SumRiskLevels(hm, nil))
}

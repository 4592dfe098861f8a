package rank_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/basins/basin"
	"github.com/katalvlaran/basins/heightmap"
	"github.com/katalvlaran/basins/lowpoint"
	"github.com/katalvlaran/basins/rank"
)

const exampleMap = `2199943210
3987894921
9856789892
8767896789
9899965678`

// basinsOf explores every low point of text.
func basinsOf(t *testing.T, text string) []basin.Basin {
	t.Helper()
	hm, err := heightmap.Parse(text)
	require.NoError(t, err)
	bs, err := basin.ExploreAll(context.Background(), hm, lowpoint.Find(hm))
	require.NoError(t, err)
	return bs
}

// TestRank_Example checks the canonical sizes and the top-3 product.
func TestRank_Example(t *testing.T) {
	bs := basinsOf(t, exampleMap)

	assert.Equal(t, []int{14, 9, 9, 3}, rank.Rank(bs))

	top, err := rank.TopN(bs, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{14, 9, 9}, top)

	p, err := rank.TopNProduct(bs, 3)
	require.NoError(t, err)
	assert.Equal(t, 1134, p)
}

// TestRank_OrderIndependent reverses discovery order.
func TestRank_OrderIndependent(t *testing.T) {
	bs := basinsOf(t, exampleMap)
	rev := make([]basin.Basin, len(bs))
	for i, b := range bs {
		rev[len(bs)-1-i] = b
	}
	assert.Equal(t, rank.Rank(bs), rank.Rank(rev))

	p1, _ := rank.TopNProduct(bs, 3)
	p2, _ := rank.TopNProduct(rev, 3)
	assert.Equal(t, p1, p2)
}

// TestTopNProduct_Preconditions covers too few basins and bad n.
func TestTopNProduct_Preconditions(t *testing.T) {
	bs := basinsOf(t, "5")

	_, err := rank.TopNProduct(bs, 3)
	require.ErrorIs(t, err, rank.ErrInsufficientBasins)
	require.NotErrorIs(t, err, heightmap.ErrMalformedGrid)

	p, err := rank.TopNProduct(bs, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, p)

	_, err = rank.TopN(bs, 0)
	require.ErrorIs(t, err, rank.ErrInvalidN)
	_, err = rank.TopNProduct(nil, -2)
	require.ErrorIs(t, err, rank.ErrInvalidN)
}

// TestRank_Empty returns an empty ranking.
func TestRank_Empty(t *testing.T) {
	assert.Empty(t, rank.Rank(nil))
	assert.Equal(t, rank.Summary{}, rank.Summarize(nil))
}

// TestSummarize checks the gonum-backed statistics on the canonical map.
func TestSummarize(t *testing.T) {
	s := rank.Summarize(basinsOf(t, exampleMap))

	assert.Equal(t, 4, s.Count)
	assert.Equal(t, 35, s.Total)
	assert.Equal(t, 14, s.Largest)
	assert.Equal(t, 3, s.Smallest)
	assert.InDelta(t, 8.75, s.Mean, 1e-9)
	assert.InDelta(t, 9.0, s.Median, 1e-9)
	assert.InDelta(t, 4.5, s.StdDev, 1e-9)
}

// TestSummarize_Single keeps StdDev finite for one basin.
func TestSummarize_Single(t *testing.T) {
	s := rank.Summarize(basinsOf(t, "5"))
	assert.Equal(t, rank.Summary{Count: 1, Total: 1, Largest: 1, Smallest: 1, Mean: 1, Median: 1}, s)
}

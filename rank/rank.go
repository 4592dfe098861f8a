package rank

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/basins/basin"
)

var (
	// ErrInsufficientBasins indicates fewer basins than requested by TopN.
	ErrInsufficientBasins = errors.New("rank: not enough basins")
	// ErrInvalidN indicates a non-positive n.
	ErrInvalidN = errors.New("rank: n must be positive")
)

// Rank returns the basin sizes in descending order.
func Rank(basins []basin.Basin) []int {
	sizes := make([]int, len(basins))
	for i, b := range basins {
		sizes[i] = b.Size()
	}
	slices.SortFunc(sizes, func(a, b int) int { return b - a })

	return sizes
}

// TopN returns the n largest basin sizes, largest first.
// Returns ErrInvalidN for n <= 0 and ErrInsufficientBasins when fewer than
// n basins are given.
func TopN(basins []basin.Basin, n int) ([]int, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidN, n)
	}
	if len(basins) < n {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrInsufficientBasins, n, len(basins))
	}

	return Rank(basins)[:n], nil
}

// TopNProduct multiplies the n largest basin sizes.
func TopNProduct(basins []basin.Basin, n int) (int, error) {
	top, err := TopN(basins, n)
	if err != nil {
		return 0, err
	}
	product := 1
	for _, s := range top {
		product *= s
	}

	return product, nil
}

package rank

import (
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/basins/basin"
)

// Summary describes the distribution of basin sizes.
// StdDev is the sample standard deviation and is 0 for fewer than two basins.
type Summary struct {
	Count    int     `json:"count" yaml:"count"`
	Total    int     `json:"total" yaml:"total"`
	Largest  int     `json:"largest" yaml:"largest"`
	Smallest int     `json:"smallest" yaml:"smallest"`
	Mean     float64 `json:"mean" yaml:"mean"`
	Median   float64 `json:"median" yaml:"median"`
	StdDev   float64 `json:"stddev" yaml:"stddev"`
}

// Summarize computes a Summary; an empty input yields the zero Summary.
func Summarize(basins []basin.Basin) Summary {
	if len(basins) == 0 {
		return Summary{}
	}
	xs := make([]float64, len(basins))
	for i, b := range basins {
		xs[i] = float64(b.Size())
	}
	slices.Sort(xs)

	s := Summary{
		Count:    len(xs),
		Total:    int(floats.Sum(xs)),
		Largest:  int(floats.Max(xs)),
		Smallest: int(floats.Min(xs)),
		Median:   stat.Quantile(0.5, stat.Empirical, xs, nil),
	}
	if len(xs) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(xs, nil)
	} else {
		s.Mean = xs[0]
	}

	return s
}

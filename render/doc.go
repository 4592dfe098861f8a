// Package render presents analysis results: a terminal summary table, a
// digit map with basins coloured in, a PNG basin map, a basin-size
// histogram chart and JSON / YAML report documents.
//
// Nothing here computes terrain properties; every function consumes an
// analysis.Report or the basins it carries.
package render

import "errors"

var (
	// ErrNilReport is returned when a nil report is passed.
	ErrNilReport = errors.New("render: report is nil")
	// ErrUnknownFormat is returned by Export for formats other than json and yaml.
	ErrUnknownFormat = errors.New("render: unknown export format")
	// ErrNoBasins is returned by Histogram when there is nothing to plot.
	ErrNoBasins = errors.New("render: no basins to plot")
	// ErrInvalidScale is returned by PNG for a non-positive scale.
	ErrInvalidScale = errors.New("render: scale must be positive")
)

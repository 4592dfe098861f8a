package render

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Histogram chart dimensions.
const (
	histWidth  = 6 * vg.Inch
	histHeight = 4 * vg.Inch
)

// Histogram draws the distribution of basin sizes as a PNG chart.
// Bins are chosen automatically.
func Histogram(w io.Writer, sizes []int) error {
	if len(sizes) == 0 {
		return ErrNoBasins
	}
	vals := make(plotter.Values, len(sizes))
	for i, s := range sizes {
		vals[i] = float64(s)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Basin sizes (%d basins)", len(sizes))
	p.X.Label.Text = "cells"
	p.Y.Label.Text = "basins"

	h, err := plotter.NewHist(vals, 0)
	if err != nil {
		return fmt.Errorf("render: histogram: %w", err)
	}
	p.Add(h)

	wt, err := p.WriterTo(histWidth, histHeight, "png")
	if err != nil {
		return fmt.Errorf("render: histogram: %w", err)
	}
	_, err = wt.WriteTo(w)

	return err
}

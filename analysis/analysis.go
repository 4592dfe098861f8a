// Package analysis drives a full run over one height map: low points, risk
// score, basins, ranking and summary statistics, returned as a Report.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/basins/basin"
	"github.com/katalvlaran/basins/heightmap"
	"github.com/katalvlaran/basins/logging"
	"github.com/katalvlaran/basins/lowpoint"
	"github.com/katalvlaran/basins/metrics"
	"github.com/katalvlaran/basins/rank"
)

// DefaultTopN is the number of largest basins multiplied into TopProduct.
const DefaultTopN = 3

// Options configures Run. The zero value is usable.
type Options struct {
	// TopN defaults to DefaultTopN when <= 0.
	TopN int
	// Basin options are passed to basin.ExploreAll unchanged.
	Basin []basin.Option
	// Logger defaults to a discarding logger.
	Logger *slog.Logger
	// Metrics may be nil.
	Metrics *metrics.Recorder
}

// Report is the outcome of a run.
type Report struct {
	Rows, Cols   int
	LowPoints    []heightmap.Point
	RiskLevelSum int
	Basins       []basin.Basin
	Sizes        []int // descending
	TopN         int
	TopProduct   int
	Summary      rank.Summary
	Overlaps     []basin.Overlap
	Elapsed      time.Duration
}

// Run analyses hm. It fails with basin errors for bad options or a
// cancelled ctx, and with rank.ErrInsufficientBasins when the map has fewer
// than TopN basins; the partial report is still returned in that case.
func Run(ctx context.Context, hm *heightmap.HeightMap, opts Options) (rep *Report, err error) {
	if hm == nil {
		return nil, basin.ErrNilMap
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	topN := opts.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}

	start := time.Now()
	rows, cols := hm.Dimensions()
	rep = &Report{Rows: rows, Cols: cols, TopN: topN}
	defer func() {
		rep.Elapsed = time.Since(start)
		opts.Metrics.ObserveRun(rep.Elapsed, rep.TopProduct, err)
	}()

	log.InfoContext(ctx, "analysis started", "rows", rows, "cols", cols)
	opts.Metrics.ObserveMap(hm.Len())

	rep.LowPoints = lowpoint.Find(hm)
	rep.RiskLevelSum = lowpoint.SumRiskLevels(hm, rep.LowPoints)
	opts.Metrics.ObserveLowPoints(len(rep.LowPoints))
	log.DebugContext(ctx, "low points found", "count", len(rep.LowPoints), "risk_level_sum", rep.RiskLevelSum)

	rep.Basins, err = basin.ExploreAll(ctx, hm, rep.LowPoints, opts.Basin...)
	if err != nil {
		return rep, fmt.Errorf("explore basins: %w", err)
	}
	for _, b := range rep.Basins {
		opts.Metrics.ObserveBasin(b.Size())
	}
	rep.Sizes = rank.Rank(rep.Basins)
	rep.Summary = rank.Summarize(rep.Basins)
	log.DebugContext(ctx, "basins explored", "count", len(rep.Basins), "cells", rep.Summary.Total)

	rep.Overlaps = basin.Overlaps(rep.Basins)
	for _, ov := range rep.Overlaps {
		log.WarnContext(ctx, "basins overlap",
			"a", rep.Basins[ov.A].Origin.String(),
			"b", rep.Basins[ov.B].Origin.String(),
			"shared", len(ov.Shared))
	}

	rep.TopProduct, err = rank.TopNProduct(rep.Basins, topN)
	if err != nil {
		return rep, err
	}

	log.InfoContext(ctx, "analysis complete",
		"low_points", len(rep.LowPoints),
		"risk_level_sum", rep.RiskLevelSum,
		"basins", len(rep.Basins),
		"top_product", rep.TopProduct)

	return rep, nil
}

// Package commands implements the basins subcommands.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/basins/analysis"
	"github.com/katalvlaran/basins/config"
	"github.com/katalvlaran/basins/heightmap"
	"github.com/katalvlaran/basins/logging"
	"github.com/katalvlaran/basins/metrics"
	"github.com/katalvlaran/basins/render"
)

const (
	analyzeCmdUse   = "analyze <file|->"
	analyzeCmdShort = "Analyse an elevation map file (or stdin with -)"
	stdinArg        = "-"
	outputFilePerm  = 0o644
)

// Flag names. Each overrides the config key of the same meaning.
const (
	flagConfig    = "config"
	flagFrontier  = "frontier"
	flagWorkers   = "workers"
	flagTopN      = "top"
	flagRidge     = "ridge"
	flagFormat    = "format"
	flagNoColor   = "no-color"
	flagMap       = "map"
	flagPNG       = "png"
	flagPNGScale  = "png-scale"
	flagHistogram = "histogram"
	flagMetrics   = "metrics"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
)

type analyzeFlags struct {
	configPath string
	frontier   string
	workers    int
	topN       int
	ridge      int
	format     string
	noColor    bool
	showMap    bool
	png        string
	pngScale   int
	histogram  string
	metrics    string
	logLevel   string
	logFormat  string
}

// NewAnalyzeCommand creates the analyze subcommand.
func NewAnalyzeCommand() *cobra.Command {
	var f analyzeFlags

	cmd := &cobra.Command{
		Use:   analyzeCmdUse,
		Short: analyzeCmdShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			f.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}

			return runAnalyze(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], cfg)
		},
	}

	fl := cmd.Flags()
	fl.StringVarP(&f.configPath, flagConfig, "c", "", "config file (default ./basins.yaml)")
	fl.StringVar(&f.frontier, flagFrontier, "stack", "flood fill frontier: stack or queue")
	fl.IntVarP(&f.workers, flagWorkers, "w", 0, "parallel basin explorers (0 = GOMAXPROCS)")
	fl.IntVarP(&f.topN, flagTopN, "n", analysis.DefaultTopN, "number of largest basins in the product")
	fl.IntVar(&f.ridge, flagRidge, heightmap.Ridge, "lowest impassable elevation")
	fl.StringVarP(&f.format, flagFormat, "f", config.FormatTable, "output format: table, json or yaml")
	fl.BoolVar(&f.noColor, flagNoColor, false, "disable coloured map output")
	fl.BoolVarP(&f.showMap, flagMap, "m", false, "print the map with basins coloured in")
	fl.StringVar(&f.png, flagPNG, "", "write a PNG basin map to this file")
	fl.IntVar(&f.pngScale, flagPNGScale, 16, "pixels per cell in the PNG map")
	fl.StringVar(&f.histogram, flagHistogram, "", "write a PNG basin size histogram to this file")
	fl.StringVar(&f.metrics, flagMetrics, "", "write Prometheus metrics to this textfile")
	fl.StringVar(&f.logLevel, flagLogLevel, "info", "log level: debug, info, warn, error")
	fl.StringVar(&f.logFormat, flagLogFormat, logging.FormatText, "log format: text or json")

	return cmd
}

// apply copies explicitly set flags over cfg.
func (f *analyzeFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed(flagFrontier) {
		cfg.Analysis.Frontier = f.frontier
	}
	if changed(flagWorkers) {
		cfg.Analysis.Workers = f.workers
	}
	if changed(flagTopN) {
		cfg.Analysis.TopN = f.topN
	}
	if changed(flagRidge) {
		cfg.Analysis.Ridge = f.ridge
	}
	if changed(flagFormat) {
		cfg.Output.Format = f.format
	}
	if changed(flagNoColor) {
		cfg.Output.Color = !f.noColor
	}
	if changed(flagMap) {
		cfg.Output.Map = f.showMap
	}
	if changed(flagPNG) {
		cfg.Output.PNG = f.png
	}
	if changed(flagPNGScale) {
		cfg.Output.PNGScale = f.pngScale
	}
	if changed(flagHistogram) {
		cfg.Output.Histogram = f.histogram
	}
	if changed(flagMetrics) {
		cfg.Output.Metrics = f.metrics
	}
	if changed(flagLogLevel) {
		cfg.Logging.Level = f.logLevel
	}
	if changed(flagLogFormat) {
		cfg.Logging.Format = f.logFormat
	}
}

func runAnalyze(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, source string, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log, err := logging.New(stderr, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}

	hm, err := readMap(stdin, source)
	if err != nil {
		return err
	}
	log.Debug("map loaded", "source", source, "cells", humanize.Comma(int64(hm.Len())))

	var rec *metrics.Recorder
	if cfg.Output.Metrics != "" {
		rec = metrics.NewRecorder()
	}

	rep, runErr := analysis.Run(ctx, hm, analysis.Options{
		TopN:    cfg.Analysis.TopN,
		Basin:   cfg.BasinOptions(),
		Logger:  log,
		Metrics: rec,
	})
	if err := rec.WriteTextfile(cfg.Output.Metrics); err != nil {
		log.Warn("metrics not written", "error", err)
	}
	if runErr != nil {
		return runErr
	}

	if cfg.Output.Map {
		if err := render.Map(stdout, hm, rep.Basins, cfg.Output.Color); err != nil {
			return err
		}
	}
	switch cfg.Output.Format {
	case config.FormatJSON, config.FormatYAML:
		err = render.Export(stdout, rep, cfg.Output.Format)
	default:
		err = render.Table(stdout, rep)
	}
	if err != nil {
		return err
	}

	if cfg.Output.PNG != "" {
		if err := writeFile(cfg.Output.PNG, func(w io.Writer) error {
			return render.PNG(w, hm, rep.Basins, cfg.Output.PNGScale)
		}); err != nil {
			return err
		}
		log.Info("basin map written", "path", cfg.Output.PNG)
	}
	if cfg.Output.Histogram != "" {
		if err := writeFile(cfg.Output.Histogram, func(w io.Writer) error {
			return render.Histogram(w, rep.Sizes)
		}); err != nil {
			return err
		}
		log.Info("histogram written", "path", cfg.Output.Histogram)
	}

	return nil
}

func readMap(stdin io.Reader, source string) (*heightmap.HeightMap, error) {
	if source == stdinArg {
		return heightmap.Read(stdin)
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()

	hm, err := heightmap.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}

	return hm, nil
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, outputFilePerm)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()

	return fn(f)
}

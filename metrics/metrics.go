// Package metrics records analysis runs as Prometheus instruments on a
// private registry, for scraping or for node_exporter's textfile collector.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "basins"

// sizeBuckets covers single-cell basins up to maps of a few million cells.
var sizeBuckets = prometheus.ExponentialBuckets(1, 4, 12)

// durationBuckets covers 1ms to ~30s runs.
var durationBuckets = []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}

// Recorder holds the instruments. A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry    *prometheus.Registry
	runs        *prometheus.CounterVec
	cells       prometheus.Counter
	lowPoints   prometheus.Counter
	basins      prometheus.Counter
	basinSize   prometheus.Histogram
	runDuration prometheus.Histogram
	lastProduct prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Analysis runs by outcome.",
		}, []string{"status"}),
		cells: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cells_total",
			Help:      "Height map cells analysed.",
		}),
		lowPoints: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "low_points_total",
			Help:      "Low points found.",
		}),
		basins: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "basins_total",
			Help:      "Basins explored.",
		}),
		basinSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "basin_size_cells",
			Help:      "Basin sizes in cells.",
			Buckets:   sizeBuckets,
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of an analysis run.",
			Buckets:   durationBuckets,
		}),
		lastProduct: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "top_product",
			Help:      "Top-N basin size product of the last successful run.",
		}),
	}
	r.registry.MustRegister(r.runs, r.cells, r.lowPoints, r.basins, r.basinSize, r.runDuration, r.lastProduct)

	return r
}

// Registry exposes the underlying registry as a Gatherer.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// ObserveMap counts the cells of an analysed map.
func (r *Recorder) ObserveMap(cells int) {
	if r == nil {
		return
	}
	r.cells.Add(float64(cells))
}

// ObserveLowPoints counts found low points.
func (r *Recorder) ObserveLowPoints(n int) {
	if r == nil {
		return
	}
	r.lowPoints.Add(float64(n))
}

// ObserveBasin records one explored basin.
func (r *Recorder) ObserveBasin(size int) {
	if r == nil {
		return
	}
	r.basins.Inc()
	r.basinSize.Observe(float64(size))
}

// ObserveRun records the outcome and duration of a run. product is stored
// only when err is nil.
func (r *Recorder) ObserveRun(d time.Duration, product int, err error) {
	if r == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	} else {
		r.lastProduct.Set(float64(product))
	}
	r.runs.WithLabelValues(status).Inc()
	r.runDuration.Observe(d.Seconds())
}

// WriteTextfile writes all metrics in the text exposition format to path,
// atomically, as expected by node_exporter's textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}

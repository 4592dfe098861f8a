package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/basins/analysis"
	"github.com/katalvlaran/basins/heightmap"
	"github.com/katalvlaran/basins/rank"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Point is a serialisable heightmap.Point.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// BasinDoc summarises one basin.
type BasinDoc struct {
	Origin Point `json:"origin" yaml:"origin"`
	Size   int   `json:"size" yaml:"size"`
}

// OverlapDoc names two overlapping basins by index.
type OverlapDoc struct {
	A      int `json:"a" yaml:"a"`
	B      int `json:"b" yaml:"b"`
	Shared int `json:"shared" yaml:"shared"`
}

// Document is the exported form of an analysis.Report.
type Document struct {
	Rows         int          `json:"rows" yaml:"rows"`
	Cols         int          `json:"cols" yaml:"cols"`
	LowPoints    []Point      `json:"low_points" yaml:"low_points"`
	RiskLevelSum int          `json:"risk_level_sum" yaml:"risk_level_sum"`
	Basins       []BasinDoc   `json:"basins" yaml:"basins"`
	Sizes        []int        `json:"sizes" yaml:"sizes"`
	TopN         int          `json:"top_n" yaml:"top_n"`
	TopProduct   int          `json:"top_product" yaml:"top_product"`
	Summary      rank.Summary `json:"summary" yaml:"summary"`
	Overlaps     []OverlapDoc `json:"overlaps,omitempty" yaml:"overlaps,omitempty"`
	ElapsedMS    float64      `json:"elapsed_ms" yaml:"elapsed_ms"`
}

// NewDocument converts a report. Basin membership is reduced to sizes.
func NewDocument(rep *analysis.Report) Document {
	doc := Document{
		Rows:         rep.Rows,
		Cols:         rep.Cols,
		LowPoints:    make([]Point, len(rep.LowPoints)),
		RiskLevelSum: rep.RiskLevelSum,
		Basins:       make([]BasinDoc, len(rep.Basins)),
		Sizes:        rep.Sizes,
		TopN:         rep.TopN,
		TopProduct:   rep.TopProduct,
		Summary:      rep.Summary,
		ElapsedMS:    float64(rep.Elapsed.Microseconds()) / 1000,
	}
	for i, p := range rep.LowPoints {
		doc.LowPoints[i] = toPoint(p)
	}
	for i, b := range rep.Basins {
		doc.Basins[i] = BasinDoc{Origin: toPoint(b.Origin), Size: b.Size()}
	}
	for _, ov := range rep.Overlaps {
		doc.Overlaps = append(doc.Overlaps, OverlapDoc{A: ov.A, B: ov.B, Shared: len(ov.Shared)})
	}

	return doc
}

// Export writes rep as an indented JSON or YAML document.
func Export(w io.Writer, rep *analysis.Report, format string) error {
	if rep == nil {
		return ErrNilReport
	}
	doc := NewDocument(rep)

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func toPoint(p heightmap.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

package render

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/basins/basin"
	"github.com/katalvlaran/basins/heightmap"
)

// goldenAngle spreads consecutive hues as far apart as possible.
const goldenAngle = 137.50776

var (
	ridgeColor = colorful.Color{R: 0.12, G: 0.12, B: 0.12}
	lowColor   = colorful.Color{R: 1, G: 1, B: 1}
	white      = colorful.Color{R: 1, G: 1, B: 1}
)

// Palette returns n distinct, evenly lit colours, one per basin.
func Palette(n int) []colorful.Color {
	out := make([]colorful.Color, n)
	for i := range out {
		hue := math.Mod(float64(i)*goldenAngle, 360)
		out[i] = colorful.Hcl(hue, 0.55, 0.6).Clamped()
	}
	return out
}

// Image draws one pixel per cell: basin cells in their basin's colour,
// lightened with elevation; low points white; ridges near black; cells
// outside every basin in grey by elevation.
func Image(hm *heightmap.HeightMap, basins []basin.Basin) *image.NRGBA {
	rows, cols := hm.Dimensions()
	img := image.NewNRGBA(image.Rect(0, 0, cols, rows))
	labels := basin.Labels(hm, basins)
	palette := Palette(len(basins))
	origins := make(map[heightmap.Point]bool, len(basins))
	for _, b := range basins {
		origins[b.Origin] = true
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := heightmap.Point{X: x, Y: y}
			v, _ := hm.At(p)
			t := float64(v) / float64(heightmap.MaxElevation)

			var c colorful.Color
			switch l := labels[hm.Index(p)]; {
			case l >= 0 && origins[p]:
				c = lowColor
			case l >= 0:
				c = palette[l].BlendLab(white, 0.6*t).Clamped()
			case v >= heightmap.Ridge:
				c = ridgeColor
			default:
				c = colorful.Color{R: t, G: t, B: t}
			}
			img.Set(x, y, toNRGBA(c))
		}
	}

	return img
}

// PNG encodes Image(hm, basins) scaled up by scale with nearest-neighbour
// sampling, so every cell becomes a scale×scale block.
func PNG(w io.Writer, hm *heightmap.HeightMap, basins []basin.Basin, scale int) error {
	if hm == nil {
		return basin.ErrNilMap
	}
	if scale <= 0 {
		return ErrInvalidScale
	}
	img := Image(hm, basins)
	b := img.Bounds()
	scaled := imaging.Resize(img, b.Dx()*scale, b.Dy()*scale, imaging.NearestNeighbor)

	return imaging.Encode(w, scaled, imaging.PNG)
}

func toNRGBA(c colorful.Color) color.NRGBA {
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

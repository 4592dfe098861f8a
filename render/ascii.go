package render

import (
	"bufio"
	"io"

	"github.com/fatih/color"

	"github.com/katalvlaran/basins/basin"
	"github.com/katalvlaran/basins/heightmap"
)

// basinColors cycles across basins in the terminal map.
var basinColors = []color.Attribute{
	color.FgRed, color.FgGreen, color.FgYellow, color.FgBlue, color.FgMagenta, color.FgCyan,
}

// Map writes hm as digits, one row per line. With colored set, basin cells
// take their basin's colour, low points are bold and underlined, and ridges
// are dimmed. Without it the output is exactly hm.String() plus a newline.
func Map(w io.Writer, hm *heightmap.HeightMap, basins []basin.Basin, colored bool) error {
	if hm == nil {
		return basin.ErrNilMap
	}
	labels := basin.Labels(hm, basins)
	origins := make(map[heightmap.Point]bool, len(basins))
	for _, b := range basins {
		origins[b.Origin] = true
	}

	ridge := newColor(colored, color.FgHiBlack)
	plain := newColor(colored)
	palette := make([]*color.Color, len(basinColors))
	lows := make([]*color.Color, len(basinColors))
	for i, a := range basinColors {
		palette[i] = newColor(colored, a)
		lows[i] = newColor(colored, a, color.Bold, color.Underline)
	}

	bw := bufio.NewWriter(w)
	rows, cols := hm.Dimensions()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := heightmap.Point{X: x, Y: y}
			v, _ := hm.At(p)
			digit := string(rune('0' + v))

			c := plain
			switch l := labels[hm.Index(p)]; {
			case l >= 0 && origins[p]:
				c = lows[l%len(lows)]
			case l >= 0:
				c = palette[l%len(palette)]
			case v >= heightmap.Ridge:
				c = ridge
			}
			if _, err := c.Fprint(bw, digit); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// newColor builds a colour that ignores the global NoColor detection so that
// output depends only on the colored flag.
func newColor(colored bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

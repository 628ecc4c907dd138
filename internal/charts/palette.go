// Package charts renders dashboard views as SVG images.
package charts

import (
	"image/color"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Primary-axis lines cycle through the first palette, secondary-axis lines through the
// second, so the two indicators stay apart even for the same country.
var (
	primaryPalette   = []string{"1f77b4", "ff7f0e", "2ca02c", "d62728", "9467bd", "8c564b"}
	secondaryPalette = []string{"17becf", "bcbd22", "e377c2", "7f7f7f", "aec7e8", "ffbb78"}
)

// trendColor is kept out of both palettes so the fitted line never looks like a country.
var trendColor = color.RGBA{A: 0xff}

func primaryColor(i int) drawing.Color {
	return drawing.ColorFromHex(primaryPalette[i%len(primaryPalette)])
}

func secondaryColor(i int) drawing.Color {
	return drawing.ColorFromHex(secondaryPalette[i%len(secondaryPalette)])
}

// rgba converts a go-chart color for use with gonum/plot.
func rgba(c drawing.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

package chart

import (
	"image/color"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Slice palette shared by the donut and the line panel, one color per
// entity in presentation order.
var palette = []color.RGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
	{R: 140, G: 86, B: 75, A: 255},
	{R: 227, G: 119, B: 194, A: 255},
	{R: 127, G: 127, B: 127, A: 255},
	{R: 188, G: 189, B: 34, A: 255},
	{R: 23, G: 190, B: 207, A: 255},
	{R: 102, G: 102, B: 153, A: 255},
}

var (
	colorDarkRed = color.RGBA{R: 139, A: 255}
	colorBlack   = color.RGBA{A: 255}

	// Alternating bar fills.
	colorGold   = color.RGBA{R: 184, G: 134, B: 11, A: 255}
	colorGreen  = color.RGBA{R: 60, G: 179, B: 113, A: 255}
	colorOrchid = color.RGBA{R: 186, G: 85, B: 211, A: 255}
	colorGrey   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

func drawingColor(c color.RGBA) drawing.Color {
	return drawing.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

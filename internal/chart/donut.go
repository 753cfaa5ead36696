package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	gochart "github.com/wcharczuk/go-chart/v2"

	"github.com/samanqayyum/dhv/internal/models"
)

// donutPanel renders the population-growth donut as a raster tile.
// gonum/plot has no pie primitive, so this panel goes through go-chart
// and is composed onto the grid canvas as an image.
func donutPanel(values []models.SliceValue, title string, wpx, hpx int) (image.Image, error) {
	cvals := make([]gochart.Value, len(values))
	for i, sv := range values {
		cvals[i] = gochart.Value{
			Value: sv.Value,
			Label: fmt.Sprintf("%s: %.1f%%", sv.Entity, sv.Share),
			Style: gochart.Style{
				FillColor: drawingColor(palette[i%len(palette)]),
			},
		}
	}

	donut := gochart.DonutChart{
		Title: title,
		TitleStyle: gochart.Style{
			FontSize:  18,
			FontColor: drawingColor(colorDarkRed),
		},
		Width:  wpx,
		Height: hpx,
		Values: cvals,
	}

	var buf bytes.Buffer
	if err := donut.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render donut: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode donut: %w", err)
	}
	return img, nil
}

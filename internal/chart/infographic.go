// Package chart renders dashboard selections into a single composed
// infographic image. It is the rendering collaborator of the engine:
// it receives ready-made slices and never touches raw indicator files.
package chart

import (
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/samanqayyum/dhv/internal/models"
)

// Fixed output geometry: a 2x3 grid on an 18x10 inch canvas at 300 DPI.
const (
	widthInch  = 18
	heightInch = 10
	DPI        = 300

	titleStrip = 0.8 * vg.Inch
)

var (
	DefaultTitle = "Effects of Population Growth"

	DefaultByline = []string{
		"Source: World Bank Open Data",
		"Indicators: population growth, net migration,",
		"CO2 emissions, unemployment (1990-2022)",
	}

	DefaultCaption = []string{
		"Brief Description:",
		"",
		"Increased population growth over time has environmental (CO2 emission),",
		"economic (unemployment) and global (net migration) impacts.",
		"Singapore's population grew by 3.31% in 2022, while industrial activity",
		"and reliance on fossil fuels kept the Arab World's CO2 emissions climbing",
		"over two decades. Economic shifts left 13.2% of South Africans unemployed",
		"in 2022, and the net-migration lines show emigrants outnumbering",
		"immigrants in the countries shown.",
	}
)

// Infographic composes one dashboard into the fixed grid.
type Infographic struct {
	Title   string
	Byline  []string
	Caption []string
	Data    *models.Dashboard
}

// New returns an infographic over d with the default texts.
func New(d *models.Dashboard) *Infographic {
	return &Infographic{
		Title:   DefaultTitle,
		Byline:  DefaultByline,
		Caption: DefaultCaption,
		Data:    d,
	}
}

// Render draws the full grid and writes it to w as PNG.
func (ig *Infographic) Render(w io.Writer) error {
	img := vgimg.NewWith(
		vgimg.UseWH(widthInch*vg.Inch, heightInch*vg.Inch),
		vgimg.UseDPI(DPI),
	)
	dc := draw.New(img)

	// Headline strip across the top, panel grid below it.
	height := dc.Max.Y - dc.Min.Y
	titleC := draw.Crop(dc, 0, 0, height-titleStrip, 0)
	bodyC := draw.Crop(dc, 0, 0, 0, -titleStrip)

	headline, err := textPanel([]string{ig.Title}, vg.Points(26), colorBlack)
	if err != nil {
		return err
	}
	headline.Draw(titleC)

	tiles := draw.Tiles{
		Rows: 2, Cols: 3,
		PadX: vg.Millimeter * 4, PadY: vg.Millimeter * 4,
		PadTop: vg.Millimeter * 2, PadBottom: vg.Millimeter * 3,
		PadLeft: vg.Millimeter * 3, PadRight: vg.Millimeter * 3,
	}

	migration, err := linePanel(ig.Data.NetMigration,
		"Decreased Net-Migration over years", "net migration")
	if err != nil {
		return err
	}
	migration.Draw(tiles.At(bodyC, 0, 0))

	emission, err := yearBarPanel(ig.Data.CO2Emission,
		"CO2 Emission of 'Arab World'", "years")
	if err != nil {
		return err
	}
	emission.Draw(tiles.At(bodyC, 1, 0))

	donutC := tiles.At(bodyC, 2, 0)
	wpx, hpx := tilePixels(donutC)
	donut, err := donutPanel(ig.Data.PopulationGrowth,
		"Population Growth: 2022 (Annual %)", wpx, hpx)
	if err != nil {
		return err
	}
	donutC.DrawImage(donutC.Rectangle, donut)

	unemployment, err := entityBarPanel(ig.Data.Unemployment,
		"Highest Unemployment rate: 2022", "countries")
	if err != nil {
		return err
	}
	unemployment.Draw(tiles.At(bodyC, 0, 1))

	byline, err := textPanel(ig.Byline, vg.Points(14), colorDarkRed)
	if err != nil {
		return err
	}
	byline.Draw(tiles.At(bodyC, 1, 1))

	caption, err := textPanel(ig.Caption, vg.Points(12), colorBlack)
	if err != nil {
		return err
	}
	caption.Draw(tiles.At(bodyC, 2, 1))

	pngc := vgimg.PngCanvas{Canvas: img}
	if _, err := pngc.WriteTo(w); err != nil {
		return fmt.Errorf("write png: %w", err)
	}
	return nil
}

// WriteFile renders to a file, removing a partial file on failure so
// the run never leaves a half-written image behind.
func (ig *Infographic) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := ig.Render(f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// tilePixels converts a tile's canvas size to raster dimensions for
// panels rendered outside gonum/plot.
func tilePixels(c draw.Canvas) (w, h int) {
	dotsPerPoint := DPI / vg.Inch.Points()
	w = int((c.Max.X - c.Min.X).Points() * dotsPerPoint)
	h = int((c.Max.Y - c.Min.Y).Points() * dotsPerPoint)
	return w, h
}

package chart

import (
	"fmt"
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/samanqayyum/dhv/internal/models"
)

// yearTicker labels every step-th year and leaves minor ticks between.
type yearTicker struct {
	step int
}

func (t yearTicker) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	for y := int(math.Ceil(min)); y <= int(math.Floor(max)); y++ {
		tick := plot.Tick{Value: float64(y)}
		if y%t.step == 0 {
			tick.Label = strconv.Itoa(y)
		}
		ticks = append(ticks, tick)
	}
	return ticks
}

func titled(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(16)
	p.Title.TextStyle.Color = colorDarkRed
	return p
}

// linePanel plots one line per series over the year axis.
func linePanel(series []models.Series, title, ylabel string) (*plot.Plot, error) {
	p := titled(title)
	p.X.Label.Text = "Years"
	p.Y.Label.Text = ylabel
	p.X.Tick.Marker = yearTicker{step: 5}

	for i, s := range series {
		pts := make(plotter.XYs, len(s.Points))
		for j, sp := range s.Points {
			pts[j].X = float64(sp.Year)
			pts[j].Y = sp.Value
		}
		ln, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("line %s: %w", s.Entity, err)
		}
		ln.Width = vg.Points(2.5)
		ln.Color = palette[i%len(palette)]
		p.Add(ln)
		p.Legend.Add(s.Entity, ln)
	}
	p.Legend.Left = true
	p.Legend.TextStyle.Font.Size = vg.Points(10)
	return p, nil
}

// entityBarPanel draws one horizontal bar per slice value, colors
// alternating, each bar annotated with its share of the selection
// total. One BarChart per entity so neighbouring bars can differ in
// color.
func entityBarPanel(values []models.SliceValue, title, ylabel string) (*plot.Plot, error) {
	p := titled(title)
	p.Y.Label.Text = ylabel
	p.X.Tick.Marker = plot.ConstantTicks{}

	names := make([]string, len(values))
	maxVal := 0.0
	for i, sv := range values {
		names[i] = sv.Entity
		if sv.Value > maxVal {
			maxVal = sv.Value
		}

		vals := make(plotter.Values, len(values))
		vals[i] = sv.Value
		bars, err := plotter.NewBarChart(vals, vg.Points(16))
		if err != nil {
			return nil, fmt.Errorf("bar %s: %w", sv.Entity, err)
		}
		bars.Horizontal = true
		bars.LineStyle.Width = vg.Length(0)
		if i%2 == 0 {
			bars.Color = colorGold
		} else {
			bars.Color = colorGreen
		}
		p.Add(bars)
	}
	p.NominalY(names...)

	// Share annotations just past each bar end.
	xys := make(plotter.XYs, len(values))
	labels := make([]string, len(values))
	for i, sv := range values {
		xys[i] = plotter.XY{X: sv.Value + maxVal*0.02, Y: float64(i)}
		labels[i] = fmt.Sprintf("%.1f%%", sv.Share)
	}
	ann, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: labels})
	if err != nil {
		return nil, err
	}
	for i := range ann.TextStyle {
		ann.TextStyle[i].Font.Size = vg.Points(11)
		ann.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(ann)

	p.X.Min = 0
	p.X.Max = maxVal * 1.18
	return p, nil
}

// yearBarPanel draws one vertical bar per year of a single series,
// colors alternating, year labels every fifth bar.
func yearBarPanel(s models.Series, title, xlabel string) (*plot.Plot, error) {
	p := titled(title)
	p.X.Label.Text = xlabel
	p.Y.Tick.Marker = plot.ConstantTicks{}

	labels := make([]string, len(s.Points))
	for i, sp := range s.Points {
		if sp.Year%5 == 0 {
			labels[i] = strconv.Itoa(sp.Year)
		}

		vals := make(plotter.Values, len(s.Points))
		vals[i] = sp.Value
		bars, err := plotter.NewBarChart(vals, vg.Points(9))
		if err != nil {
			return nil, fmt.Errorf("bar %d: %w", sp.Year, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		if i%2 == 0 {
			bars.Color = colorOrchid
		} else {
			bars.Color = colorGrey
		}
		p.Add(bars)
	}
	p.NominalX(labels...)
	return p, nil
}

// textPanel centers a block of lines on an otherwise empty plot.
func textPanel(lines []string, size vg.Length, col color.Color) (*plot.Plot, error) {
	p := plot.New()
	p.HideAxes()
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	step := 0.052
	xys := make(plotter.XYs, len(lines))
	for i := range lines {
		xys[i] = plotter.XY{
			X: 0.5,
			Y: 0.5 + (float64(len(lines)-1)/2-float64(i))*step,
		}
	}
	lbls, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: lines})
	if err != nil {
		return nil, err
	}
	for i := range lbls.TextStyle {
		lbls.TextStyle[i].Font.Size = size
		lbls.TextStyle[i].Color = col
		lbls.TextStyle[i].XAlign = draw.XCenter
		lbls.TextStyle[i].YAlign = draw.YCenter
	}
	p.Add(lbls)
	return p, nil
}

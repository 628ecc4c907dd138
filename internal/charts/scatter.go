package charts

import (
	"bytes"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"wbexplorer.org/internal/dashboard"
)

var (
	ScatterWidth  = 8 * vg.Inch
	ScatterHeight = 5 * vg.Inch
)

// Scatter plots the merged pairs of a correlation view, one glyph color per country,
// together with the fitted least-squares line.
func Scatter(view *dashboard.CorrelationView) ([]byte, error) {
	if view == nil || len(view.Points) == 0 {
		return nil, ErrEmptyView
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s vs %s", view.Y.Label, view.X.Label)
	p.X.Label.Text = view.X.Label
	p.Y.Label.Text = view.Y.Label
	p.Legend.Top = true
	p.Add(plotter.NewGrid())

	var order []string
	byCountry := make(map[string]plotter.XYs)
	for _, pt := range view.Points {
		if _, ok := byCountry[pt.Country]; !ok {
			order = append(order, pt.Country)
		}
		byCountry[pt.Country] = append(byCountry[pt.Country], plotter.XY{X: pt.X, Y: pt.Y})
	}

	for i, country := range order {
		sc, err := plotter.NewScatter(byCountry[country])
		if err != nil {
			return nil, fmt.Errorf("scatter for %s: %w", country, err)
		}
		sc.GlyphStyle.Color = rgba(primaryColor(i))
		sc.GlyphStyle.Radius = vg.Points(3)
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(sc)
		p.Legend.Add(country, sc)
	}

	if len(view.Trend) == 2 {
		line, err := trendLine(view.Trend)
		if err != nil {
			return nil, err
		}
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("Trend (r = %s, p = %s)", view.RText, view.PText), line)
	}

	w, err := p.WriterTo(ScatterWidth, ScatterHeight, "svg")
	if err != nil {
		return nil, fmt.Errorf("rendering scatter: %w", err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("rendering scatter: %w", err)
	}
	return buf.Bytes(), nil
}

func trendLine(points []dashboard.Point) (*plotter.Line, error) {
	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i] = plotter.XY{X: pt.X, Y: pt.Y}
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("trend line: %w", err)
	}
	line.LineStyle.Width = vg.Points(1.5)
	line.LineStyle.Color = trendColor
	line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	return line, nil
}

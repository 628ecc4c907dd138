package charts

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"

	"wbexplorer.org/internal/dashboard"
)

var ErrEmptyView = errors.New("nothing to draw")

const (
	TimeSeriesWidth  = 960
	TimeSeriesHeight = 480
)

// TimeSeries draws one line per country and year. Lines flagged Secondary are dashed
// and scaled against the right-hand axis.
func TimeSeries(view *dashboard.TimeSeriesView) ([]byte, error) {
	if view == nil || len(view.Lines) == 0 {
		return nil, ErrEmptyView
	}

	var (
		series         []chart.Series
		xr             = newBounds()
		primaryY       = newBounds()
		secondaryY     = newBounds()
		nPrim, nSecond int
	)

	for _, line := range view.Lines {
		if len(line.Points) == 0 {
			continue
		}
		xs := make([]float64, 0, len(line.Points)+1)
		ys := make([]float64, 0, len(line.Points)+1)
		for _, p := range line.Points {
			xs = append(xs, p.X)
			ys = append(ys, p.Y)
			xr.add(p.X)
			if line.Secondary {
				secondaryY.add(p.Y)
			} else {
				primaryY.add(p.Y)
			}
		}

		style := chart.Style{StrokeWidth: 2}
		s := chart.ContinuousSeries{Name: line.Label}
		if line.Secondary {
			style.StrokeColor = secondaryColor(nSecond)
			style.StrokeDashArray = []float64{6, 4}
			s.YAxis = chart.YAxisSecondary
			nSecond++
		} else {
			style.StrokeColor = primaryColor(nPrim)
			nPrim++
		}
		// A single observation still needs two vertices and a visible marker.
		if len(xs) == 1 {
			xs = append(xs, xs[0])
			ys = append(ys, ys[0])
			style.DotWidth = 3
			style.DotColor = style.StrokeColor
		}
		s.XValues = xs
		s.YValues = ys
		s.Style = style
		series = append(series, s)
	}
	if len(series) == 0 {
		return nil, ErrEmptyView
	}

	graph := chart.Chart{
		Title:      view.Title,
		Width:      TimeSeriesWidth,
		Height:     TimeSeriesHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:           view.XLabel,
			Range:          xr.padded(1),
			ValueFormatter: yearFormatter,
		},
		YAxis: chart.YAxis{
			Name:           view.Primary.Label,
			Range:          primaryY.padded(0),
			ValueFormatter: valueFormatter,
		},
		Series: series,
	}
	// Only secondary lines survived: share their scale so the left axis is valid.
	if primaryY.empty() {
		graph.YAxis.Range = secondaryY.padded(0)
	}
	if view.Secondary != nil && !secondaryY.empty() {
		graph.YAxisSecondary = chart.YAxis{
			Name:           view.Secondary.Label,
			Range:          secondaryY.padded(0),
			ValueFormatter: valueFormatter,
		}
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	var buf bytes.Buffer
	if err := graph.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("rendering time series: %w", err)
	}
	return buf.Bytes(), nil
}

func yearFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.Itoa(int(math.Round(f)))
	}
	return ""
}

func valueFormatter(v interface{}) string {
	f, ok := v.(float64)
	if !ok {
		return ""
	}
	if math.Abs(f) >= 1000 {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'f', 1, 64)
}

type bounds struct {
	min, max float64
}

func newBounds() *bounds {
	return &bounds{min: math.Inf(1), max: math.Inf(-1)}
}

func (b *bounds) add(v float64) {
	b.min = math.Min(b.min, v)
	b.max = math.Max(b.max, v)
}

func (b *bounds) empty() bool {
	return b.min > b.max
}

// padded returns the range widened by pad on each side. A zero-width range is
// widened to 5% of its magnitude (at least 1) since go-chart rejects it.
func (b *bounds) padded(pad float64) *chart.ContinuousRange {
	if b.empty() {
		return nil
	}
	lo, hi := b.min-pad, b.max+pad
	if lo == hi {
		delta := math.Max(math.Abs(lo)*0.05, 1)
		lo, hi = lo-delta, hi+delta
	}
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

// Package dashboard turns the loaded datasets and the user's current choices into a
// render model. Build is a pure function: the HTTP layer calls it once per request and
// renders whatever it returns.
package dashboard

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"wbexplorer.org/internal/indicator"
	"wbexplorer.org/internal/join"
	"wbexplorer.org/internal/selection"
	"wbexplorer.org/internal/stats"
)

// SummaryColumns are the headers of every summary-statistics table.
var SummaryColumns = []string{"count", "mean", "std", "min", "25%", "50%", "75%", "max"}

const (
	msgNoCountries       = "Select at least one country to display charts."
	msgSameTimeSeries    = "Please select two different indicators for the time-series chart."
	msgSameCorrelation   = "Please select two different indicators for the correlation analysis."
	msgIncompleteCorr    = "Select an indicator for both axes of the correlation analysis."
	msgMissingPrimary    = "Select a primary indicator for the time-series chart."
	msgNoOverlap         = "No overlapping data for the selected countries and indicators."
	msgInsufficientPairs = "Not enough overlapping data points to compute a correlation."
	msgConstantPairs     = "Correlation is undefined because one indicator does not vary for the selected countries."
)

// DefaultSelection is the initial state of the multi-indicator dashboard: the first
// dataset against the last on the time-series chart, the second against the first in
// the correlation view.
func DefaultSelection(catalog *indicator.Catalog, preferredCountries []string) Selection {
	keys := catalog.Keys()
	sel := Selection{Countries: selection.Defaults(catalog.Countries(), preferredCountries)}
	if len(keys) == 0 {
		return sel
	}
	sel.Primary = keys[0]
	if len(keys) > 1 {
		sel.Secondary = keys[len(keys)-1]
		sel.CorrelationX = keys[1]
		sel.CorrelationY = keys[0]
	}
	return sel
}

// ExplorerSelection is the initial state of the single-indicator explorer.
func ExplorerSelection(ds *indicator.Dataset, preferredCountries []string) Selection {
	return Selection{
		Countries: selection.Defaults(ds.Table.Countries(), preferredCountries),
		Primary:   ds.Key,
	}
}

// Build computes the render model for sel. It never fails: user-input conflicts and
// sparse data become messages and the affected view is left out.
func Build(catalog *indicator.Catalog, sel Selection) View {
	sel.Countries = selection.Intersect(sel.Countries, catalog.Countries())
	view := View{
		Selection: sel,
		Messages:  []Message{},
		Summaries: []SummaryTable{},
	}

	if len(sel.Countries) == 0 {
		view.info(SectionSelection, msgNoCountries)
		return view
	}

	summarized := buildTimeSeries(&view, catalog, sel)
	for _, ds := range summarized {
		view.Summaries = append(view.Summaries, Summarize(ds, sel.Countries))
	}

	if sel.CorrelationX != "" || sel.CorrelationY != "" {
		buildCorrelation(&view, catalog, sel)
	}

	return view
}

func lookup(view *View, catalog *indicator.Catalog, section Section, key string) (*indicator.Dataset, bool) {
	ds, ok := catalog.Get(key)
	if !ok {
		view.warn(section, fmt.Sprintf("Unknown indicator %q.", key))
	}
	return ds, ok
}

func axisOf(ds *indicator.Dataset) Axis {
	return Axis{Key: ds.Key, Label: ds.AxisLabel()}
}

// buildTimeSeries fills view.TimeSeries and returns the datasets that get a summary table.
func buildTimeSeries(view *View, catalog *indicator.Catalog, sel Selection) []*indicator.Dataset {
	if sel.Primary == "" {
		if sel.Secondary != "" {
			view.warn(SectionTimeSeries, msgMissingPrimary)
		}
		return nil
	}
	primary, ok := lookup(view, catalog, SectionTimeSeries, sel.Primary)
	if !ok {
		return nil
	}
	if sel.Secondary == "" {
		view.TimeSeries = lineChart(primary, nil, sel.Countries)
		if view.TimeSeries == nil {
			view.info(SectionTimeSeries, fmt.Sprintf("No %s data for the selected countries.", primary.Label))
		}
		return []*indicator.Dataset{primary}
	}

	if sel.Secondary == sel.Primary {
		view.warn(SectionTimeSeries, msgSameTimeSeries)
		return []*indicator.Dataset{primary}
	}

	secondary, ok := lookup(view, catalog, SectionTimeSeries, sel.Secondary)
	if !ok {
		return []*indicator.Dataset{primary}
	}

	view.TimeSeries = lineChart(primary, secondary, sel.Countries)
	if view.TimeSeries == nil {
		view.info(SectionTimeSeries, "No data for the selected countries and indicators.")
	}
	return []*indicator.Dataset{primary, secondary}
}

func lineChart(primary, secondary *indicator.Dataset, countries []string) *TimeSeriesView {
	ts := &TimeSeriesView{
		Title:   primary.Label,
		XLabel:  "Year",
		Primary: axisOf(primary),
	}
	ts.Lines = appendLines(ts.Lines, primary, countries, secondary != nil, false)
	if secondary != nil {
		axis := axisOf(secondary)
		ts.Secondary = &axis
		ts.Title = fmt.Sprintf("%s and %s", primary.Label, secondary.Label)
		ts.Lines = appendLines(ts.Lines, secondary, countries, true, true)
	}
	if len(ts.Lines) == 0 {
		return nil
	}
	return ts
}

func appendLines(lines []Line, ds *indicator.Dataset, countries []string, labelIndicator, onSecondary bool) []Line {
	for _, country := range countries {
		rows := ds.Table.ForCountry(country)
		if len(rows) == 0 {
			continue
		}
		points := make([]Point, len(rows))
		for i, o := range rows {
			points[i] = Point{X: float64(o.Year), Y: o.Value}
		}
		label := country
		if labelIndicator {
			label = fmt.Sprintf("%s (%s)", country, ds.Label)
		}
		lines = append(lines, Line{
			Label:     label,
			Country:   country,
			Indicator: ds.Key,
			Secondary: onSecondary,
			Points:    points,
		})
	}
	return lines
}

// Summarize describes ds for each of countries that has data, ordered by country name.
func Summarize(ds *indicator.Dataset, countries []string) SummaryTable {
	table := SummaryTable{
		Indicator: axisOf(ds),
		Columns:   SummaryColumns,
		Rows:      []SummaryRow{},
	}
	for _, cs := range stats.DescribeByCountry(selection.Filter(ds.Table, countries)) {
		s := cs.Summary
		table.Rows = append(table.Rows, SummaryRow{
			Country: cs.Country,
			Stats:   s,
			Values: []string{
				strconv.Itoa(s.Count),
				formatStat(s.Mean),
				formatStat(s.Std),
				formatStat(s.Min),
				formatStat(s.Q25),
				formatStat(s.Median),
				formatStat(s.Q75),
				formatStat(s.Max),
			},
		})
	}
	return table
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func buildCorrelation(view *View, catalog *indicator.Catalog, sel Selection) {
	if sel.CorrelationX == "" || sel.CorrelationY == "" {
		view.warn(SectionCorrelation, msgIncompleteCorr)
		return
	}
	if sel.CorrelationX == sel.CorrelationY {
		view.warn(SectionCorrelation, msgSameCorrelation)
		return
	}

	xs, ok := lookup(view, catalog, SectionCorrelation, sel.CorrelationX)
	if !ok {
		return
	}
	ys, ok := lookup(view, catalog, SectionCorrelation, sel.CorrelationY)
	if !ok {
		return
	}

	pairs, err := join.Inner(selection.Filter(xs.Table, sel.Countries), selection.Filter(ys.Table, sel.Countries))
	if err != nil {
		view.warn(SectionCorrelation, fmt.Sprintf("Could not merge %s and %s: %v", xs.Label, ys.Label, err))
		return
	}
	if len(pairs) == 0 {
		view.info(SectionCorrelation, msgNoOverlap)
		return
	}

	x, y := join.Columns(pairs)
	corr, err := stats.Correlate(x, y)
	switch {
	case errors.Is(err, stats.ErrInsufficientData):
		view.info(SectionCorrelation, msgInsufficientPairs)
		return
	case errors.Is(err, stats.ErrUndefinedCorrelation):
		view.info(SectionCorrelation, msgConstantPairs)
		return
	case err != nil:
		view.warn(SectionCorrelation, err.Error())
		return
	}

	points := make([]ScatterPoint, len(pairs))
	minX, maxX := math.Inf(1), math.Inf(-1)
	for i, p := range pairs {
		points[i] = ScatterPoint{Country: p.CountryName, Year: p.Year, X: p.X, Y: p.Y}
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
	}

	view.Correlation = &CorrelationView{
		X:         axisOf(xs),
		Y:         axisOf(ys),
		N:         corr.N,
		R:         corr.R,
		PValue:    corr.PValue,
		RText:     stats.FormatR(corr.R),
		PText:     stats.FormatP(corr.PValue),
		Slope:     corr.Slope,
		Intercept: corr.Intercept,
		Points:    points,
		Trend: []Point{
			{X: minX, Y: corr.Predict(minX)},
			{X: maxX, Y: corr.Predict(maxX)},
		},
	}
}

package stats

import (
	"errors"
	"math"
	"slices"
	"sort"

	mstats "github.com/montanaflynn/stats"

	"wbexplorer.org/internal/indicator"
)

// Summary holds the descriptive statistics of one value column.
type Summary struct {
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// CountrySummary is one row of the summary-statistics table.
type CountrySummary struct {
	Country string
	Summary Summary
}

// Describe summarizes values. An empty input yields Count 0 and NaN everywhere else;
// a single value has an undefined (NaN) standard deviation.
func Describe(values []float64) Summary {
	nan := math.NaN()
	s := Summary{Count: len(values), Mean: nan, Std: nan, Min: nan, Q25: nan, Median: nan, Q75: nan, Max: nan}
	if len(values) == 0 {
		return s
	}

	data := mstats.Float64Data(values)
	s.Mean, _ = mstats.Mean(data)
	s.Min, _ = mstats.Min(data)
	s.Max, _ = mstats.Max(data)
	s.Median, _ = mstats.Median(data)
	if len(values) > 1 {
		s.Std, _ = mstats.StandardDeviationSample(data)
	}

	sorted := slices.Clone(values)
	sort.Float64s(sorted)
	s.Q25, _ = quantile(sorted, 0.25)
	s.Q75, _ = quantile(sorted, 0.75)
	return s
}

var errQuantileRange = errors.New("quantile must be within [0, 1]")

// quantile interpolates linearly between the closest ranks of sorted data, position
// (n-1)*p. montanaflynn/stats only offers nearest-rank style percentiles, which disagree
// with the interpolated quartiles users expect from describe().
func quantile(sorted []float64, p float64) (float64, error) {
	if len(sorted) == 0 {
		return math.NaN(), mstats.EmptyInputErr
	}
	if p < 0 || p > 1 {
		return math.NaN(), errQuantileRange
	}
	h := float64(len(sorted)-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1], nil
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i]), nil
}

// DescribeByCountry groups rows by country name and summarizes each group.
// Rows are ordered by country name.
func DescribeByCountry(rows []indicator.Observation) []CountrySummary {
	groups := make(map[string][]float64)
	for _, o := range rows {
		groups[o.CountryName] = append(groups[o.CountryName], o.Value)
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]CountrySummary, 0, len(names))
	for _, name := range names {
		out = append(out, CountrySummary{Country: name, Summary: Describe(groups[name])})
	}
	return out
}

package indicator

import (
	"slices"
	"sort"
)

// Observation is one (country, year, value) triple of a long-form indicator table.
type Observation struct {
	CountryName   string  `json:"countryName"`
	CountryCode   string  `json:"countryCode"`
	IndicatorName string  `json:"indicatorName"`
	IndicatorCode string  `json:"indicatorCode"`
	Year          int     `json:"year"`
	Value         float64 `json:"value"`
}

// Table is the long-form rendition of one wide World Bank export.
// It is never mutated after Parse returns, so a *Table may be shared freely.
type Table struct {
	source        string
	indicatorName string
	indicatorCode string
	observations  []Observation
	countries     []string
}

func newTable(source, indicatorName, indicatorCode string, observations []Observation) *Table {
	sort.SliceStable(observations, func(i, j int) bool {
		return observations[i].Year < observations[j].Year
	})

	seen := make(map[string]bool)
	var countries []string
	for _, o := range observations {
		if !seen[o.CountryName] {
			seen[o.CountryName] = true
			countries = append(countries, o.CountryName)
		}
	}
	sort.Strings(countries)

	return &Table{
		source:        source,
		indicatorName: indicatorName,
		indicatorCode: indicatorCode,
		observations:  observations,
		countries:     countries,
	}
}

// NewTable builds a table from already long-form observations. Rows are sorted by year.
func NewTable(source string, observations []Observation) *Table {
	var name, code string
	if len(observations) > 0 {
		name, code = observations[0].IndicatorName, observations[0].IndicatorCode
	}
	return newTable(source, name, code, slices.Clone(observations))
}

// Source is the path (or label) the table was read from.
func (t *Table) Source() string { return t.source }

func (t *Table) IndicatorName() string { return t.indicatorName }

func (t *Table) IndicatorCode() string { return t.indicatorCode }

func (t *Table) Len() int { return len(t.observations) }

// Observations returns a copy of all rows, ordered by year.
func (t *Table) Observations() []Observation {
	return slices.Clone(t.observations)
}

// Countries returns the sorted distinct country names that have at least one observation.
func (t *Table) Countries() []string {
	return slices.Clone(t.countries)
}

func (t *Table) HasCountry(name string) bool {
	_, found := slices.BinarySearch(t.countries, name)
	return found
}

// ForCountry returns the rows of a single country, ordered by year.
func (t *Table) ForCountry(name string) []Observation {
	var rows []Observation
	for _, o := range t.observations {
		if o.CountryName == name {
			rows = append(rows, o)
		}
	}
	return rows
}

// YearRange reports the first and last year present. ok is false for an empty table.
func (t *Table) YearRange() (first, last int, ok bool) {
	if len(t.observations) == 0 {
		return 0, 0, false
	}
	return t.observations[0].Year, t.observations[len(t.observations)-1].Year, true
}

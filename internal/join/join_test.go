package join

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wbexplorer.org/internal/indicator"
	"wbexplorer.org/internal/models"
	"wbexplorer.org/internal/selection"
)

func load(t *testing.T, name string) *indicator.Table {
	t.Helper()
	table, err := indicator.Load(models.GetFixturePath(t, name), indicator.DefaultLoadOptions())
	require.NoError(t, err)
	return table
}

func TestInnerKeepsOverlappingKeysOnly(t *testing.T) {
	gdp := load(t, "gdp_per_capita.csv")
	births := load(t, "birth_rate.csv")

	countries := []string{"Norway", "Sweden", "Germany"}
	pairs, err := Inner(selection.Filter(gdp, countries), selection.Filter(births, countries))
	require.NoError(t, err)

	// Germany has no birth rate rows, Norway lacks 1992.
	require.Len(t, pairs, 7)
	assert.Equal(t, Pair{CountryName: "Norway", CountryCode: "NOR", Year: 1990, X: 52000, Y: 14.4}, pairs[0])
	assert.Equal(t, Pair{CountryName: "Norway", CountryCode: "NOR", Year: 1993, X: 55800, Y: 13.8}, pairs[2])
	assert.Equal(t, Pair{CountryName: "Sweden", CountryCode: "SWE", Year: 1993, X: 36000, Y: 13.5}, pairs[6])

	for _, p := range pairs {
		assert.NotEqual(t, "Germany", p.CountryName)
	}
}

func TestInnerDisjointYearsIsEmpty(t *testing.T) {
	births := load(t, "birth_rate.csv")
	labor := load(t, "female_labor.csv")

	countries := []string{"Sweden", "Switzerland"}
	pairs, err := Inner(selection.Filter(births, countries), selection.Filter(labor, countries))
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestInnerEmptySide(t *testing.T) {
	births := load(t, "birth_rate.csv")

	pairs, err := Inner(nil, births.Observations())
	require.NoError(t, err)
	assert.NotNil(t, pairs)
	assert.Empty(t, pairs)
}

func TestInnerRequiresMatchingCountryCode(t *testing.T) {
	x := []indicator.Observation{{CountryName: "Sweden", CountryCode: "SWE", Year: 2000, Value: 1}}
	y := []indicator.Observation{{CountryName: "Sweden", CountryCode: "SWE2", Year: 2000, Value: 2}}

	pairs, err := Inner(x, y)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestColumns(t *testing.T) {
	xs, ys := Columns([]Pair{{X: 1, Y: 2}, {X: 3, Y: 4}})
	assert.Equal(t, []float64{1, 3}, xs)
	assert.Equal(t, []float64{2, 4}, ys)
}

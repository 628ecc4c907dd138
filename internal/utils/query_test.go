package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"wbexplorer.org/internal/dashboard"
)

var testDefaults = dashboard.Selection{
	Countries:    []string{"Sweden", "Switzerland"},
	Primary:      "birth_rate",
	Secondary:    "female_labor",
	CorrelationX: "gdp_per_capita",
	CorrelationY: "birth_rate",
}

func TestParseSelectionParamsDefaults(t *testing.T) {
	sel, fieldErrors := ParseSelectionParams(url.Values{}, testDefaults)
	assert.Empty(t, fieldErrors)
	assert.Equal(t, testDefaults, sel)
}

func TestParseSelectionParamsOverrides(t *testing.T) {
	params := url.Values{
		"countries": {"Norway", "Korea, Rep."},
		"primary":   {"gdp_per_capita"},
		"secondary": {""},
		"y":         {"female_labor"},
	}

	sel, fieldErrors := ParseSelectionParams(params, testDefaults)
	assert.Empty(t, fieldErrors)
	assert.Equal(t, dashboard.Selection{
		Countries:    []string{"Norway", "Korea, Rep."},
		Primary:      "gdp_per_capita",
		Secondary:    "",
		CorrelationX: "gdp_per_capita",
		CorrelationY: "female_labor",
	}, sel)
}

func TestParseSelectionParamsSubmittedWithoutCountries(t *testing.T) {
	sel, fieldErrors := ParseSelectionParams(url.Values{"submitted": {"1"}}, testDefaults)
	assert.Empty(t, fieldErrors)
	assert.Empty(t, sel.Countries)
	assert.Equal(t, "birth_rate", sel.Primary)
}

func TestParseSelectionParamsInvalid(t *testing.T) {
	params := url.Values{
		"countries": {"Sweden", "x; DROP TABLE --"},
		"primary":   {"../etc/passwd"},
	}

	sel, fieldErrors := ParseSelectionParams(params, testDefaults)
	assert.Contains(t, fieldErrors, "countries")
	assert.Contains(t, fieldErrors, "primary")
	assert.Equal(t, []string{"Sweden"}, sel.Countries)
	assert.Equal(t, "birth_rate", sel.Primary)
}

func TestSelectionQueryRoundTrip(t *testing.T) {
	sel := dashboard.Selection{
		Countries: []string{"Switzerland", "Sweden"},
		Primary:   "birth_rate",
	}

	parsed, fieldErrors := ParseSelectionParams(SelectionQuery(sel), testDefaults)
	assert.Empty(t, fieldErrors)
	assert.Equal(t, sel, parsed)

	parsed, _ = ParseSelectionParams(SelectionQuery(dashboard.Selection{Primary: "gdp_per_capita"}), testDefaults)
	assert.Empty(t, parsed.Countries)
}

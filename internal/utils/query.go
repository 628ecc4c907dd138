package utils

import (
	"net/url"

	"wbexplorer.org/internal/dashboard"
)

// Query keys shared by the HTML forms, the JSON API and the chart endpoints.
const (
	CountriesParam = "countries"
	PrimaryParam   = "primary"
	SecondaryParam = "secondary"
	XParam         = "x"
	YParam         = "y"

	// SubmittedParam marks a form submission, so that a submission with no country
	// checked means "nothing selected" rather than "use the defaults".
	SubmittedParam = "submitted"
)

// ParseCountries returns the repeated countries parameter. The second result reports
// whether the request carried an explicit selection, even an empty one.
func ParseCountries(params url.Values, fieldErrors map[string][]string) ([]string, bool, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	raw, hasCountries := params[CountriesParam]
	explicit := hasCountries || params.Has(SubmittedParam)

	countries := make([]string, 0, len(raw))
	for _, name := range raw {
		name = SanitizeInput(name)
		if name == "" {
			continue
		}
		if err := ValidateCountryName(name); err != nil {
			fieldErrors[CountriesParam] = append(fieldErrors[CountriesParam], err.Error())
			continue
		}
		countries = append(countries, name)
	}

	return countries, explicit, fieldErrors
}

// ParseSelectionParams overlays the query parameters on defaults. A parameter that is
// present but empty clears the corresponding choice.
func ParseSelectionParams(params url.Values, defaults dashboard.Selection) (dashboard.Selection, map[string][]string) {
	sel := defaults

	countries, explicit, fieldErrors := ParseCountries(params, nil)
	if explicit {
		sel.Countries = countries
	}

	indicatorParam := func(key string, target *string) {
		if !params.Has(key) {
			return
		}
		value := SanitizeInput(params.Get(key))
		if value != "" {
			if err := ValidateID(value); err != nil {
				fieldErrors[key] = append(fieldErrors[key], err.Error())
				return
			}
		}
		*target = value
	}

	indicatorParam(PrimaryParam, &sel.Primary)
	indicatorParam(SecondaryParam, &sel.Secondary)
	indicatorParam(XParam, &sel.CorrelationX)
	indicatorParam(YParam, &sel.CorrelationY)

	return sel, fieldErrors
}

// SelectionQuery encodes sel so that ParseSelectionParams reproduces it exactly.
func SelectionQuery(sel dashboard.Selection) url.Values {
	params := url.Values{}
	params.Set(SubmittedParam, "1")
	for _, name := range sel.Countries {
		params.Add(CountriesParam, name)
	}
	params.Set(PrimaryParam, sel.Primary)
	params.Set(SecondaryParam, sel.Secondary)
	params.Set(XParam, sel.CorrelationX)
	params.Set(YParam, sel.CorrelationY)
	return params
}

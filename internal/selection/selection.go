// Package selection restricts indicator tables to the countries a user picked.
package selection

import (
	"strings"

	"wbexplorer.org/internal/indicator"
)

// Normalize trims names, drops blanks and removes duplicates while keeping the user's order.
func Normalize(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}

// Intersect keeps the selected names that are available, in selection order.
func Intersect(selected, available []string) []string {
	avail := make(map[string]bool, len(available))
	for _, name := range available {
		avail[name] = true
	}
	out := make([]string, 0, len(selected))
	for _, name := range Normalize(selected) {
		if avail[name] {
			out = append(out, name)
		}
	}
	return out
}

// Defaults returns the preferred preselection restricted to what the data actually contains.
func Defaults(available, preferred []string) []string {
	return Intersect(preferred, available)
}

// Filter returns the rows of table whose country is selected. The set of countries in the
// result is exactly selected ∩ table.Countries(); row order (by year) is preserved.
func Filter(table *indicator.Table, selected []string) []indicator.Observation {
	want := make(map[string]bool, len(selected))
	for _, name := range selected {
		want[name] = true
	}
	if len(want) == 0 {
		return nil
	}

	var rows []indicator.Observation
	for _, o := range table.Observations() {
		if want[o.CountryName] {
			rows = append(rows, o)
		}
	}
	return rows
}

// ByCountry groups filtered rows per country, preserving year order inside each group.
func ByCountry(rows []indicator.Observation) map[string][]indicator.Observation {
	groups := make(map[string][]indicator.Observation)
	for _, o := range rows {
		groups[o.CountryName] = append(groups[o.CountryName], o)
	}
	return groups
}

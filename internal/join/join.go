// Package join merges two indicator tables into (x, y) pairs for correlation analysis.
package join

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"wbexplorer.org/internal/indicator"
)

const (
	colCountryName = "Country Name"
	colCountryCode = "Country Code"
	colYear        = "Year"
	colX           = "X"
	colY           = "Y"
)

// Pair is one row of the merged table: the same country and year observed in both indicators.
type Pair struct {
	CountryName string  `json:"countryName"`
	CountryCode string  `json:"countryCode"`
	Year        int     `json:"year"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
}

func frame(rows []indicator.Observation, valueCol string) dataframe.DataFrame {
	records := make([][]string, 0, len(rows)+1)
	records = append(records, []string{colCountryName, colCountryCode, colYear, valueCol})
	for _, o := range rows {
		records = append(records, []string{
			o.CountryName,
			o.CountryCode,
			strconv.Itoa(o.Year),
			strconv.FormatFloat(o.Value, 'g', -1, 64),
		})
	}

	return dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
		dataframe.WithTypes(map[string]series.Type{
			colYear:  series.Int,
			valueCol: series.Float,
		}),
	)
}

// Inner joins x and y on (country name, country code, year). Only keys present in both
// survive. An empty result is a valid outcome, not an error. Pairs are ordered by country
// then year.
func Inner(x, y []indicator.Observation) ([]Pair, error) {
	if len(x) == 0 || len(y) == 0 {
		return []Pair{}, nil
	}

	left := frame(x, colX)
	if left.Err != nil {
		return nil, fmt.Errorf("building left frame: %w", left.Err)
	}
	right := frame(y, colY)
	if right.Err != nil {
		return nil, fmt.Errorf("building right frame: %w", right.Err)
	}

	joined := left.InnerJoin(right, colCountryName, colCountryCode, colYear)
	if joined.Err != nil {
		return nil, fmt.Errorf("joining indicator tables: %w", joined.Err)
	}
	if joined.Nrow() == 0 {
		return []Pair{}, nil
	}

	names := joined.Col(colCountryName).Records()
	codes := joined.Col(colCountryCode).Records()
	years, err := joined.Col(colYear).Int()
	if err != nil {
		return nil, fmt.Errorf("reading joined years: %w", err)
	}
	xs := joined.Col(colX).Float()
	ys := joined.Col(colY).Float()

	pairs := make([]Pair, joined.Nrow())
	for i := range pairs {
		pairs[i] = Pair{
			CountryName: names[i],
			CountryCode: codes[i],
			Year:        years[i],
			X:           xs[i],
			Y:           ys[i],
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		if pairs[i].CountryName != pairs[j].CountryName {
			return pairs[i].CountryName < pairs[j].CountryName
		}
		return pairs[i].Year < pairs[j].Year
	})
	return pairs, nil
}

// Columns splits pairs into the x and y vectors.
func Columns(pairs []Pair) (xs, ys []float64) {
	xs = make([]float64, len(pairs))
	ys = make([]float64, len(pairs))
	for i, p := range pairs {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

package indicator

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"wbexplorer.org/internal/logging"
)

var (
	ErrMalformedHeader = errors.New("malformed indicator header")
	ErrMalformedRow    = errors.New("malformed indicator row")
	ErrMalformedValue  = errors.New("malformed indicator value")
)

// idColumns are the leading columns of every World Bank wide export, in order.
var idColumns = []string{"Country Name", "Country Code", "Indicator Name", "Indicator Code"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LoadOptions controls how a wide export is read.
type LoadOptions struct {
	// SkipRows is the number of raw lines before the header, blank lines included.
	SkipRows int
	Logger   *slog.Logger
}

// DefaultLoadOptions matches the layout of the World Bank bulk CSV download.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{SkipRows: 4}
}

func isMissing(cell string) bool {
	switch cell {
	case "", "NA", "NaN", "..", "null":
		return true
	}
	return false
}

type yearColumn struct {
	index int
	year  int
}

// Load reads the wide export at path and melts it into a long-form Table.
func Load(path string, opts LoadOptions) (table *Table, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening indicator file: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	defer logging.HandleDeferredError(&err, f.Close, logger, "close_indicator_csv")

	table, err = parse(f, path, opts)
	if err != nil {
		return nil, fmt.Errorf("error parsing indicator file %s: %w", path, err)
	}
	return table, nil
}

// Parse melts a wide export read from r. Year columns whose header is not an integer are
// dropped, missing values are dropped and the result is sorted by year.
func Parse(r io.Reader, opts LoadOptions) (*Table, error) {
	return parse(r, "", opts)
}

func parse(r io.Reader, source string, opts LoadOptions) (*Table, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	// encoding/csv silently drops blank lines, so the metadata block is skipped line by line.
	for i := 0; i < opts.SkipRows; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: input ends before the header row", ErrMalformedHeader)
			}
			return nil, err
		}
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformedHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}

	years, err := parseHeader(header)
	if err != nil {
		return nil, err
	}

	type rowKey struct {
		code string
		year int
	}
	seen := make(map[rowKey]bool)

	var (
		observations  []Observation
		indicatorName string
		indicatorCode string
	)

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}

		line, _ := reader.FieldPos(0)
		if len(record) < len(idColumns) {
			return nil, fmt.Errorf("%w: line %d has %d fields, want at least %d",
				ErrMalformedRow, line, len(record), len(idColumns))
		}

		base := Observation{
			CountryName:   strings.TrimSpace(record[0]),
			CountryCode:   strings.TrimSpace(record[1]),
			IndicatorName: strings.TrimSpace(record[2]),
			IndicatorCode: strings.TrimSpace(record[3]),
		}
		if indicatorCode == "" {
			indicatorName, indicatorCode = base.IndicatorName, base.IndicatorCode
		}

		for _, yc := range years {
			if yc.index >= len(record) {
				continue
			}
			cell := strings.TrimSpace(record[yc.index])
			if isMissing(cell) {
				continue
			}
			value, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d, year %d: %q", ErrMalformedValue, line, yc.year, cell)
			}
			if math.IsNaN(value) {
				continue
			}
			if math.IsInf(value, 0) {
				return nil, fmt.Errorf("%w: line %d, year %d: infinite value %q", ErrMalformedValue, line, yc.year, cell)
			}

			key := rowKey{code: base.CountryCode, year: yc.year}
			if seen[key] {
				continue
			}
			seen[key] = true

			obs := base
			obs.Year = yc.year
			obs.Value = value
			observations = append(observations, obs)
		}
	}

	return newTable(source, indicatorName, indicatorCode, observations), nil
}

func parseHeader(header []string) ([]yearColumn, error) {
	if len(header) < len(idColumns) {
		return nil, fmt.Errorf("%w: got %d columns, want at least %d", ErrMalformedHeader, len(header), len(idColumns))
	}
	for i, want := range idColumns {
		if got := strings.TrimSpace(header[i]); got != want {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrMalformedHeader, i+1, got, want)
		}
	}

	var years []yearColumn
	for i := len(idColumns); i < len(header); i++ {
		year, err := strconv.Atoi(strings.TrimSpace(header[i]))
		if err != nil {
			continue
		}
		years = append(years, yearColumn{index: i, year: year})
	}
	if len(years) == 0 {
		return nil, fmt.Errorf("%w: no year columns", ErrMalformedHeader)
	}
	return years, nil
}

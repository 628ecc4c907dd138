package models

// DatasetEntry describes one loaded indicator file.
type DatasetEntry struct {
	Key           string   `json:"key"`
	Label         string   `json:"label"`
	Unit          string   `json:"unit"`
	IndicatorName string   `json:"indicatorName"`
	IndicatorCode string   `json:"indicatorCode"`
	Rows          int      `json:"rows"`
	FirstYear     int      `json:"firstYear,omitempty"`
	LastYear      int      `json:"lastYear,omitempty"`
	Countries     []string `json:"countries"`
}

// NewDatasetEntry creates a DatasetEntry; years are omitted when the table is empty.
func NewDatasetEntry(key, label, unit, indicatorName, indicatorCode string, rows int, firstYear, lastYear int, countries []string) DatasetEntry {
	if countries == nil {
		countries = []string{}
	}
	return DatasetEntry{
		Key:           key,
		Label:         label,
		Unit:          unit,
		IndicatorName: indicatorName,
		IndicatorCode: indicatorCode,
		Rows:          rows,
		FirstYear:     firstYear,
		LastYear:      lastYear,
		Countries:     countries,
	}
}

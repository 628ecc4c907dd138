package restapi

import (
	"net/http"

	"wbexplorer.org/internal/indicator"
	"wbexplorer.org/internal/models"
)

func datasetEntry(ds *indicator.Dataset) models.DatasetEntry {
	first, last, _ := ds.Table.YearRange()
	return models.NewDatasetEntry(
		ds.Key,
		ds.Label,
		ds.Unit,
		ds.Table.IndicatorName(),
		ds.Table.IndicatorCode(),
		ds.Table.Len(),
		first,
		last,
		ds.Table.Countries(),
	)
}

func (api *RestAPI) indicatorsHandler(w http.ResponseWriter, r *http.Request) {
	datasets := api.Catalog.Datasets()
	entries := make([]models.DatasetEntry, 0, len(datasets))
	for _, ds := range datasets {
		entries = append(entries, datasetEntry(ds))
	}

	api.sendResponse(w, r, models.NewListResponse(entries))
}

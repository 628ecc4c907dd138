package restapi

import (
	"net/http"

	"wbexplorer.org/internal/dashboard"
	"wbexplorer.org/internal/models"
	"wbexplorer.org/internal/selection"
	"wbexplorer.org/internal/utils"
)

func (api *RestAPI) summaryHandler(w http.ResponseWriter, r *http.Request) {
	key := utils.ExtractIDFromParams(r, "indicator")

	if err := utils.ValidateID(key); err != nil {
		fieldErrors := map[string][]string{
			"indicator": {err.Error()},
		}
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	ds, ok := api.Catalog.Get(key)
	if !ok {
		api.sendNotFound(w, r)
		return
	}

	countries, explicit, fieldErrors := utils.ParseCountries(r.URL.Query(), nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}
	if !explicit {
		countries = api.Config.DefaultCountries
	}

	table := dashboard.Summarize(ds, selection.Intersect(countries, ds.Table.Countries()))
	api.sendResponse(w, r, models.NewEntryResponse(table))
}

package restapi

import (
	"net/http"

	"wbexplorer.org/internal/models"
	"wbexplorer.org/internal/utils"
)

// countriesHandler lists the selectable countries: the union over all datasets, or
// those of a single dataset when ?indicator= is given.
func (api *RestAPI) countriesHandler(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("indicator")
	if key == "" {
		api.sendResponse(w, r, models.NewListResponse(api.Catalog.Countries()))
		return
	}

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

	api.sendResponse(w, r, models.NewListResponse(ds.Table.Countries()))
}

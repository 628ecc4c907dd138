package restapi

import (
	"net/http"

	"wbexplorer.org/internal/dashboard"
	"wbexplorer.org/internal/models"
	"wbexplorer.org/internal/utils"
)

// viewFromRequest builds the render model for the query string. It writes a 400
// response and returns false when the parameters are invalid.
func (api *RestAPI) viewFromRequest(w http.ResponseWriter, r *http.Request) (dashboard.View, bool) {
	sel, fieldErrors := utils.ParseSelectionParams(r.URL.Query(), api.DefaultSelection())
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return dashboard.View{}, false
	}
	return dashboard.Build(api.Catalog, sel), true
}

func (api *RestAPI) viewHandler(w http.ResponseWriter, r *http.Request) {
	view, ok := api.viewFromRequest(w, r)
	if !ok {
		return
	}

	api.sendResponse(w, r, models.NewEntryResponse(view))
}

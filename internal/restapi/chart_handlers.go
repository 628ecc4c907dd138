package restapi

import (
	"net/http"

	"wbexplorer.org/internal/charts"
)

// timeSeriesChartHandler renders the line chart for the query string. A suppressed
// time-series view (no countries, identical axes, no data) is a 404.
func (api *RestAPI) timeSeriesChartHandler(w http.ResponseWriter, r *http.Request) {
	view, ok := api.viewFromRequest(w, r)
	if !ok {
		return
	}
	if view.TimeSeries == nil {
		api.sendNotFound(w, r)
		return
	}

	svg, err := charts.TimeSeries(view.TimeSeries)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.sendSVG(w, r, svg)
}

func (api *RestAPI) correlationChartHandler(w http.ResponseWriter, r *http.Request) {
	view, ok := api.viewFromRequest(w, r)
	if !ok {
		return
	}
	if view.Correlation == nil {
		api.sendNotFound(w, r)
		return
	}

	svg, err := charts.Scatter(view.Correlation)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	api.sendSVG(w, r, svg)
}

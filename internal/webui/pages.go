package webui

import (
	"html/template"
	"net/http"
	"sort"
	"strings"

	"wbexplorer.org/internal/dashboard"
	"wbexplorer.org/internal/indicator"
	"wbexplorer.org/internal/utils"
)

type pageData struct {
	Title          string
	Datasets       []*indicator.Dataset
	Dataset        *indicator.Dataset
	Countries      []string
	Selected       map[string]bool
	View           dashboard.View
	TimeSeriesURL  template.URL
	CorrelationURL template.URL
}

func (webUI *WebUI) newPageData(title string, countries []string, view dashboard.View) pageData {
	selected := make(map[string]bool, len(view.Selection.Countries))
	for _, name := range view.Selection.Countries {
		selected[name] = true
	}

	// Chart URLs repeat the selection so the image handlers rebuild the same view.
	query := utils.SelectionQuery(view.Selection).Encode()
	return pageData{
		Title:          title,
		Datasets:       webUI.Catalog.Datasets(),
		Countries:      countries,
		Selected:       selected,
		View:           view,
		TimeSeriesURL:  template.URL("/charts/timeseries.svg?" + query),
		CorrelationURL: template.URL("/charts/correlation.svg?" + query),
	}
}

func badRequest(w http.ResponseWriter, fieldErrors map[string][]string) {
	fields := make([]string, 0, len(fieldErrors))
	for field, errs := range fieldErrors {
		fields = append(fields, field+": "+strings.Join(errs, ", "))
	}
	sort.Strings(fields)
	http.Error(w, "invalid request parameters\n"+strings.Join(fields, "\n"), http.StatusBadRequest)
}

func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	sel, fieldErrors := utils.ParseSelectionParams(r.URL.Query(), webUI.DefaultSelection())
	if len(fieldErrors) > 0 {
		badRequest(w, fieldErrors)
		return
	}

	view := dashboard.Build(webUI.Catalog, sel)
	webUI.render(w, "dashboard.html", webUI.newPageData("World Bank Indicators", webUI.Catalog.Countries(), view))
}

// explorerHandler is the single-indicator page: one line chart and one summary table.
func (webUI *WebUI) explorerHandler(w http.ResponseWriter, r *http.Request) {
	key := utils.ExtractIDFromParams(r, "indicator")
	ds, ok := webUI.Catalog.Get(key)
	if !ok {
		http.NotFound(w, r)
		return
	}

	sel, fieldErrors := utils.ParseSelectionParams(r.URL.Query(), dashboard.ExplorerSelection(ds, webUI.Config.DefaultCountries))
	if len(fieldErrors) > 0 {
		badRequest(w, fieldErrors)
		return
	}
	sel.Primary = ds.Key
	sel.Secondary, sel.CorrelationX, sel.CorrelationY = "", "", ""

	view := dashboard.Build(webUI.Catalog, sel)
	data := webUI.newPageData(ds.Label+" Explorer", ds.Table.Countries(), view)
	data.Dataset = ds
	webUI.render(w, "explorer.html", data)
}

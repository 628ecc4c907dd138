package webui

import (
	"html/template"
	"net/http"

	"github.com/davecgh/go-spew/spew"
)

type debugData struct {
	Title string
	Pre   string
}

// debugSampleRows caps the observations dumped for one dataset.
const debugSampleRows = 50

func writeDebugData(w http.ResponseWriter, title string, data interface{}) {
	content := spew.Sdump(data)
	w.Header().Set("Content-Type", "text/html")
	tmpl, err := template.ParseFS(templateFS, "templates/debug_index.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dataStruct := debugData{
		Title: title,
		Pre:   content,
	}

	err = tmpl.Execute(w, dataStruct)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

type datasetDebug struct {
	Key           string
	Label         string
	Path          string
	IndicatorName string
	IndicatorCode string
	Rows          int
	FirstYear     int
	LastYear      int
	Countries     []string
	Sample        interface{}
}

func (webUI *WebUI) debugIndexHandler(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("dataset")

	var data interface{}
	var title string

	switch ds, ok := webUI.Catalog.Get(key); {
	case key == "":
		data = map[string]interface{}{
			"datasets":     webUI.Catalog.Keys(),
			"cachedPaths":  webUI.Cache.Paths(),
			"parses":       webUI.Cache.Parses(),
			"countries":    len(webUI.Catalog.Countries()),
			"environment":  webUI.Config.Env.String(),
			"defaultPicks": webUI.Config.DefaultCountries,
		}
		title = "Indicator Cache"
	case ok:
		first, last, _ := ds.Table.YearRange()
		rows := ds.Table.Observations()
		if len(rows) > debugSampleRows {
			rows = rows[:debugSampleRows]
		}
		data = datasetDebug{
			Key:           ds.Key,
			Label:         ds.Label,
			Path:          ds.Path,
			IndicatorName: ds.Table.IndicatorName(),
			IndicatorCode: ds.Table.IndicatorCode(),
			Rows:          ds.Table.Len(),
			FirstYear:     first,
			LastYear:      last,
			Countries:     ds.Table.Countries(),
			Sample:        rows,
		}
		title = "Dataset - " + ds.Label
	default:
		data = map[string]interface{}{
			"error":    "Unknown dataset. Please use one of the following keys.",
			"datasets": webUI.Catalog.Keys(),
		}
		title = "Choose a dataset"
	}

	writeDebugData(w, title, data)
}

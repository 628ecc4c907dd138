// Package webui serves the HTML dashboard, the per-indicator explorer pages and a
// debug dump of the loaded data.
package webui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"wbexplorer.org/internal/app"
)

//go:embed templates/*.html
var templateFS embed.FS

type WebUI struct {
	*app.Application
	pages *template.Template
}

// NewWebUI parses the embedded page templates.
func NewWebUI(application *app.Application) (*WebUI, error) {
	pages, err := template.ParseFS(templateFS, "templates/layout.html", "templates/dashboard.html", "templates/explorer.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}
	return &WebUI{Application: application, pages: pages}, nil
}

func (webUI *WebUI) SetWebUIRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/", webUI.dashboardHandler)
	router.HandlerFunc(http.MethodGet, "/explorer/:indicator", webUI.explorerHandler)
	router.HandlerFunc(http.MethodGet, "/debug/", webUI.debugIndexHandler)
}

func (webUI *WebUI) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := webUI.pages.ExecuteTemplate(w, name, data); err != nil {
		webUI.Logger.Error("failed to render page", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

package restapi

import (
	"net/http"
	"net/http/pprof"

	"github.com/julienschmidt/httprouter"
)

// RegisterPprofHandlers exposes the runtime profiler under /debug/pprof/.
func RegisterPprofHandlers(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/debug/pprof/*item", func(w http.ResponseWriter, r *http.Request) {
		switch httprouter.ParamsFromContext(r.Context()).ByName("item") {
		case "/cmdline":
			pprof.Cmdline(w, r)
		case "/profile":
			pprof.Profile(w, r)
		case "/symbol":
			pprof.Symbol(w, r)
		case "/trace":
			pprof.Trace(w, r)
		default:
			pprof.Index(w, r)
		}
	})
}

func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/api/indicators.json", api.indicatorsHandler)
	router.HandlerFunc(http.MethodGet, "/api/countries.json", api.countriesHandler)
	router.HandlerFunc(http.MethodGet, "/api/view.json", api.viewHandler)
	router.HandlerFunc(http.MethodGet, "/api/summary/:indicator", api.summaryHandler)
	router.HandlerFunc(http.MethodGet, "/charts/timeseries.svg", api.timeSeriesChartHandler)
	router.HandlerFunc(http.MethodGet, "/charts/correlation.svg", api.correlationChartHandler)
}

// Middleware wraps handler with request logging, security headers and compression,
// outermost first.
func (api *RestAPI) Middleware(handler http.Handler) http.Handler {
	return NewRequestLoggingMiddleware(api.Logger)(api.WithSecurityHeaders(NewCompressionMiddleware(api.compression(), api.Logger)(handler)))
}

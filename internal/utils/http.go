package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractIDFromParams returns the named route parameter, trimmed, with one trailing
// ".json" removed so that /api/summary/gdp_per_capita.json names the gdp_per_capita dataset.
func ExtractIDFromParams(r *http.Request, paramName string) string {
	key := strings.TrimSpace(httprouter.ParamsFromContext(r.Context()).ByName(paramName))
	return strings.TrimSuffix(key, ".json")
}

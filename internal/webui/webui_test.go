package webui

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wbexplorer.org/internal/app"
	"wbexplorer.org/internal/appconf"
	"wbexplorer.org/internal/models"
)

func createTestWebUI(t *testing.T) *WebUI {
	cfg := appconf.Config{
		Env: appconf.Test,
		Datasets: []appconf.DatasetConfig{
			{Key: appconf.BirthRateKey, Label: "Birth Rate", Unit: "per 1,000 people", Path: models.GetFixturePath(t, "birth_rate.csv")},
			{Key: appconf.GDPKey, Label: "Real GDP per Capita", Path: models.GetFixturePath(t, "gdp_per_capita.csv")},
			{Key: appconf.FemaleLaborKey, Label: "Female Labor", Path: models.GetFixturePath(t, "female_labor.csv")},
		},
		DefaultCountries: appconf.DefaultCountries(),
	}
	application, err := app.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	webUI, err := NewWebUI(application)
	require.NoError(t, err)
	return webUI
}

func get(t *testing.T, webUI *WebUI, target string) *httptest.ResponseRecorder {
	router := httprouter.New()
	webUI.SetWebUIRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestDashboardPage(t *testing.T) {
	webUI := createTestWebUI(t)

	rec := get(t, webUI, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")

	body := rec.Body.String()
	assert.Contains(t, body, `<option value="Sweden" selected>Sweden</option>`)
	assert.Contains(t, body, `<option value="Germany">Germany</option>`)
	assert.Contains(t, body, "/charts/timeseries.svg?")
	assert.Contains(t, body, "/charts/correlation.svg?")
	assert.Contains(t, body, "Summary statistics: Birth Rate (per 1,000 people)")
	assert.Contains(t, body, "Summary statistics: Female Labor")
	assert.Contains(t, body, "Correlation coefficient (r):")
	assert.Contains(t, body, "p-value:")
}

func TestDashboardPageSameIndicators(t *testing.T) {
	webUI := createTestWebUI(t)

	rec := get(t, webUI, "/?submitted=1&countries=Sweden&primary=gdp_per_capita&secondary=gdp_per_capita&x=gdp_per_capita&y=gdp_per_capita")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Please select two different indicators for the time-series chart.")
	assert.Contains(t, body, "Please select two different indicators for the correlation analysis.")
	assert.NotContains(t, body, "/charts/timeseries.svg?")
	assert.NotContains(t, body, "/charts/correlation.svg?")
	assert.Contains(t, body, "Summary statistics: Real GDP per Capita")
}

func TestDashboardPageNoCountries(t *testing.T) {
	webUI := createTestWebUI(t)

	rec := get(t, webUI, "/?submitted=1")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Select at least one country to display charts.")
	assert.NotContains(t, body, "<img")
	assert.NotContains(t, body, "Summary statistics")
}

func TestDashboardPageInvalidParams(t *testing.T) {
	webUI := createTestWebUI(t)

	rec := get(t, webUI, "/?primary=../etc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "primary")
}

func TestExplorerPage(t *testing.T) {
	webUI := createTestWebUI(t)

	rec := get(t, webUI, "/explorer/birth_rate")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Birth Rate Explorer")
	assert.Contains(t, body, `action="/explorer/birth_rate"`)
	assert.Contains(t, body, "/charts/timeseries.svg?")
	assert.NotContains(t, body, "/charts/correlation.svg?")
	assert.NotContains(t, body, `<option value="Germany"`)
	assert.Contains(t, body, `<option value="Norway">Norway</option>`)
}

func TestExplorerPageIgnoresOtherAxes(t *testing.T) {
	webUI := createTestWebUI(t)

	rec := get(t, webUI, "/explorer/gdp_per_capita?secondary=birth_rate&x=gdp_per_capita&y=birth_rate")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.NotContains(t, body, "/charts/correlation.svg?")
	assert.Contains(t, body, "Summary statistics: Real GDP per Capita")
	assert.NotContains(t, body, "Summary statistics: Birth Rate")
}

func TestExplorerPageUnknownIndicator(t *testing.T) {
	webUI := createTestWebUI(t)

	rec := get(t, webUI, "/explorer/co2")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDebugIndex(t *testing.T) {
	webUI := createTestWebUI(t)

	rec := get(t, webUI, "/debug/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Indicator Cache")
	assert.Contains(t, rec.Body.String(), "birth_rate.csv")

	rec = get(t, webUI, "/debug/?dataset=birth_rate")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "SP.DYN.CBRT.IN")
	assert.Contains(t, rec.Body.String(), "Switzerland")

	rec = get(t, webUI, "/debug/?dataset=co2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Choose a dataset")
}

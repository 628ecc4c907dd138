package restapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"
	"wbexplorer.org/internal/app"
	"wbexplorer.org/internal/appconf"
	"wbexplorer.org/internal/logging"
	"wbexplorer.org/internal/models"
)

// createTestApi creates a new restAPI instance with the fixture datasets loaded.
func createTestApi(t *testing.T) *RestAPI {
	cfg := appconf.Config{
		Env: appconf.EnvFlagToEnvironment("test"),
		Datasets: []appconf.DatasetConfig{
			{Key: appconf.BirthRateKey, Label: "Birth Rate", Unit: "per 1,000 people", Path: models.GetFixturePath(t, "birth_rate.csv")},
			{Key: appconf.GDPKey, Label: "Real GDP per Capita", Path: models.GetFixturePath(t, "gdp_per_capita.csv")},
			{Key: appconf.FemaleLaborKey, Label: "Female Labor", Path: models.GetFixturePath(t, "female_labor.csv")},
		},
		DefaultCountries: appconf.DefaultCountries(),
	}

	application, err := app.New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	return NewRestAPI(application)
}

func newTestRouter(api *RestAPI) *httprouter.Router {
	router := httprouter.New()
	api.SetRoutes(router)
	return router
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the specified endpoint, and returns the response
// and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	var response models.ResponseModel
	resp := serveApiAndDecodeEndpoint(t, api, endpoint, &response)
	return resp, response
}

// serveApiAndDecodeEndpoint decodes the body into target, for tests that want typed data.
func serveApiAndDecodeEndpoint(t *testing.T, api *RestAPI, endpoint string, target any) *http.Response {
	server := httptest.NewServer(newTestRouter(api))
	defer server.Close()
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	err = json.NewDecoder(resp.Body).Decode(target)
	require.NoError(t, err)

	return resp
}

// serveApiAndReadEndpoint returns the raw body, for non-JSON endpoints.
func serveApiAndReadEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, []byte) {
	server := httptest.NewServer(newTestRouter(api))
	defer server.Close()
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

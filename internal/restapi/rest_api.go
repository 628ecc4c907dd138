package restapi

import (
	"wbexplorer.org/internal/app"
)

type RestAPI struct {
	*app.Application
}

// NewRestAPI creates a new RestAPI instance backed by the loaded application.
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{Application: app}
}

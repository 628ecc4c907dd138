package app

import (
	"fmt"
	"log/slog"
	"time"

	"wbexplorer.org/internal/appconf"
	"wbexplorer.org/internal/dashboard"
	"wbexplorer.org/internal/indicator"
	"wbexplorer.org/internal/logging"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: the configuration, a logger, and the indicator tables loaded at startup.
type Application struct {
	Config  appconf.Config
	Logger  *slog.Logger
	Cache   *indicator.Cache
	Catalog *indicator.Catalog
}

// New validates cfg and loads every configured dataset. A load failure is returned
// unchanged so the caller can stop the process.
func New(cfg appconf.Config, logger *slog.Logger) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	start := time.Now()
	cache := indicator.NewCache(logger)
	catalog, err := indicator.NewCatalog(cache, cfg.Datasets)
	if err != nil {
		return nil, err
	}

	logging.LogOperation(logger, "datasets_loaded",
		slog.Int("datasets", len(cfg.Datasets)),
		slog.Int("countries", len(catalog.Countries())),
		logging.Since(start),
		slog.String("component", "app"))

	return &Application{
		Config:  cfg,
		Logger:  logger,
		Cache:   cache,
		Catalog: catalog,
	}, nil
}

// DefaultSelection is the dashboard state before the user changes anything.
func (app *Application) DefaultSelection() dashboard.Selection {
	return dashboard.DefaultSelection(app.Catalog, app.Config.DefaultCountries)
}

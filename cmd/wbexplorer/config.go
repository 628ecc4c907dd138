package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"wbexplorer.org/internal/app"
	"wbexplorer.org/internal/appconf"
	"wbexplorer.org/internal/logging"
)

// options holds the command-line flags shared by all subcommands.
type options struct {
	port           int
	env            string
	configFile     string
	birthRateCSV   string
	gdpCSV         string
	femaleLaborCSV string
	countries      []string
	verbose        bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "wbexplorer",
		Short:        "Explore World Bank indicator exports in the browser",
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.env, "env", "development", "Environment (development|test|production)")
	flags.StringVar(&opts.configFile, "config", "", "Optional YAML file with datasets and default countries")
	flags.StringVar(&opts.birthRateCSV, "birth-rate-csv", "", "Path to the birth rate export (overrides the default path)")
	flags.StringVar(&opts.gdpCSV, "gdp-csv", "", "Path to the GDP per capita export (overrides the default path)")
	flags.StringVar(&opts.femaleLaborCSV, "female-labor-csv", "", "Path to the female labor participation export (overrides the default path)")
	flags.StringArrayVar(&opts.countries, "countries", nil, "Country preselected on first load; repeat for several")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log at debug level")

	root.AddCommand(serveSubcommand(opts))
	root.AddCommand(describeSubcommand(opts))
	return root
}

// config turns the flags into an application configuration. Flags win over the
// config file, which wins over the built-in defaults.
func (o *options) config() (appconf.Config, error) {
	cfg := appconf.Config{
		Port:             o.port,
		Env:              appconf.EnvFlagToEnvironment(o.env),
		Datasets:         appconf.DefaultDatasets(),
		DefaultCountries: appconf.DefaultCountries(),
		Compression:      appconf.DefaultCompression(),
	}

	if o.configFile != "" {
		var err error
		cfg, err = appconf.LoadFile(o.configFile, cfg)
		if err != nil {
			return cfg, err
		}
		if o.port != 0 {
			cfg.Port = o.port
		}
	}

	overrides := map[string]string{
		appconf.BirthRateKey:   o.birthRateCSV,
		appconf.GDPKey:         o.gdpCSV,
		appconf.FemaleLaborKey: o.femaleLaborCSV,
	}
	for i, ds := range cfg.Datasets {
		if path := overrides[ds.Key]; path != "" {
			cfg.Datasets[i].Path = path
		}
	}

	if len(o.countries) > 0 {
		cfg.DefaultCountries = o.countries
	}
	return cfg, nil
}

func (o *options) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return logging.NewStructuredLogger(w, level)
}

// loadApplication builds the configuration and loads every dataset. Errors are logged
// before being returned since they end the process.
func (o *options) loadApplication(logger *slog.Logger) (*app.Application, error) {
	cfg, err := o.config()
	if err != nil {
		logging.LogError(logger, "failed to read configuration", err, slog.String("component", "main"))
		return nil, err
	}

	application, err := app.New(cfg, logger)
	if err != nil {
		logging.LogError(logger, "failed to load indicator data", err, slog.String("component", "main"))
		return nil, err
	}
	return application, nil
}

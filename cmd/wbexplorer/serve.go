package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/spf13/cobra"

	"wbexplorer.org/internal/app"
	"wbexplorer.org/internal/appconf"
	"wbexplorer.org/internal/restapi"
	"wbexplorer.org/internal/webui"
)

const (
	shutdownTimeout = 10 * time.Second
	writeTimeout    = 10 * time.Second
	// Longer than the 30s default capture of /debug/pprof/profile.
	profilingWriteTimeout = time.Minute
)

// serverWriteTimeout leaves room for CPU profiles where the pprof routes are registered.
func serverWriteTimeout(env appconf.Environment) time.Duration {
	if env == appconf.Development {
		return profilingWriteTimeout
	}
	return writeTimeout
}

func serveSubcommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the indicator files and serve the dashboard over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := opts.logger(os.Stdout)
			application, err := opts.loadApplication(logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, application)
		},
	}
	cmd.Flags().IntVar(&opts.port, "port", 4000, "HTTP server port")
	return cmd
}

// routes assembles every handler behind the shared middleware.
func routes(application *app.Application) (http.Handler, error) {
	router := httprouter.New()

	api := restapi.NewRestAPI(application)
	api.SetRoutes(router)

	webUI, err := webui.NewWebUI(application)
	if err != nil {
		return nil, err
	}
	webUI.SetWebUIRoutes(router)

	if application.Config.Env == appconf.Development {
		restapi.RegisterPprofHandlers(router)
	}

	return api.Middleware(router), nil
}

func serve(ctx context.Context, application *app.Application) error {
	handler, err := routes(application)
	if err != nil {
		return err
	}

	logger := application.Logger
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", application.Config.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: serverWriteTimeout(application.Config.Env),
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "addr", srv.Addr, "env", application.Config.Env.String())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		logger.Error("server stopped", "error", err)
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

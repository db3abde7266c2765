// Package main is the entry point for the journey search service.
//
//	@title			Journey Search API
//	@version		1.0.0
//	@description	Finds journeys between two airports from an upstream flights feed.
//
//	@contact.name	API Support
//	@contact.url	https://github.com/flight-search/journey-search-api/issues
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Import generated docs for swagger
	_ "github.com/flight-search/journey-search-api/docs"

	flighthttp "github.com/flight-search/journey-search-api/internal/adapter/http"
	"github.com/flight-search/journey-search-api/internal/adapter/http/middleware"
	"github.com/flight-search/journey-search-api/internal/adapter/provider/flightapi"
	"github.com/flight-search/journey-search-api/internal/config"
	"github.com/flight-search/journey-search-api/internal/infrastructure/logger"
	"github.com/flight-search/journey-search-api/internal/usecase"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Logging)

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

// run serves until SIGINT or SIGTERM, then drains in-flight requests.
func run(cfg *config.Config, log zerolog.Logger) error {
	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("provider_source", cfg.Provider.Source).
		Int("max_flights", cfg.Provider.MaxFlights).
		Msg("Configuration loaded")

	e := newServer(cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Server.Port)
		log.Info().Str("address", addr).Msg("Starting server")
		serveErr <- e.Start(addr)
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", cfg.Server.ShutdownTimeout).Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	log.Info().Msg("Server stopped")
	return nil
}

// newServer builds the echo instance with middleware and routes.
func newServer(cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.Debug = cfg.IsDevelopment()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	provider := flightapi.NewProvider(newSource(cfg.Provider), &flightapi.Config{
		MaxFlights: cfg.Provider.MaxFlights,
	})
	journeyUseCase := usecase.NewJourneySearchUseCase(
		provider,
		log.With().Str("provider", provider.Name()).Logger(),
	)

	middleware.Setup(e, log)
	flighthttp.RegisterRoutes(e, flighthttp.NewJourneyHandler(journeyUseCase))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

// newSource builds the flight source selected by PROVIDER_SOURCE.
func newSource(cfg config.ProviderConfig) flightapi.Source {
	if cfg.Source == config.SourceFile {
		return flightapi.NewFileSource(cfg.DataFile)
	}
	return flightapi.NewHTTPSource(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout})
}

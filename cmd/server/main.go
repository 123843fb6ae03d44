// Package main is the entry point for the trip search API server. It exposes
// the same cheapest-trip search as the CLI over HTTP, for callers that want
// JSON instead of a terminal summary.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/tripfinder/cheapest-trip-finder/internal/adapter/amadeus"
	triphttp "github.com/tripfinder/cheapest-trip-finder/internal/adapter/http"
	"github.com/tripfinder/cheapest-trip-finder/internal/config"
	"github.com/tripfinder/cheapest-trip-finder/internal/infrastructure/logger"
	"github.com/tripfinder/cheapest-trip-finder/internal/infrastructure/timeutil"
	"github.com/tripfinder/cheapest-trip-finder/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "trip-finder-api",
	})

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	setupMiddleware(e, log)
	setupRoutes(e, cfg, log)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, log)
}

// setupMiddleware configures the Echo middleware stack.
func setupMiddleware(e *echo.Echo, log *logger.Logger) {
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info().
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("HTTP request")
			return nil
		},
	}))
}

// setupRoutes wires the upstream client, use case, and handlers.
func setupRoutes(e *echo.Echo, cfg *config.Config, log *logger.Logger) {
	client := amadeus.NewClient(amadeus.Config{
		BaseURL:      cfg.Amadeus.BaseURL,
		ClientID:     cfg.Amadeus.ClientID,
		ClientSecret: cfg.Amadeus.ClientSecret,
		Timeout:      cfg.Amadeus.HTTPTimeout,
	}, log)

	searcher := usecase.NewTripSearchUseCase(client, client, timeutil.NewRealClock(), log)
	resolver := usecase.NewAirlineResolver(client, log)

	// Route is validated per request; origin and destination come from the body.
	defaults := cfg.Criteria("", "")
	tripHandler := triphttp.NewTripHandler(searcher, resolver, defaults)

	// Health check at root level for load balancers.
	e.GET("/health", healthCheckHandler)

	api := e.Group("/api/v1")
	api.POST("/trips/search", tripHandler.SearchTrips)
}

// healthCheckHandler returns the health status of the service.
func healthCheckHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// gracefulShutdown drains in-flight requests on interrupt signals.
func gracefulShutdown(e *echo.Echo, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}

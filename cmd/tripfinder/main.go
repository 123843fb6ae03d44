// Package main is the command-line entry point for the cheapest-trip finder.
// It runs one search for the given route and prints a human-readable summary:
// the cheapest price per month and the overall cheapest itinerary with full
// per-segment route detail.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tripfinder/cheapest-trip-finder/internal/adapter/amadeus"
	"github.com/tripfinder/cheapest-trip-finder/internal/adapter/cli"
	"github.com/tripfinder/cheapest-trip-finder/internal/config"
	"github.com/tripfinder/cheapest-trip-finder/internal/domain"
	"github.com/tripfinder/cheapest-trip-finder/internal/infrastructure/logger"
	"github.com/tripfinder/cheapest-trip-finder/internal/infrastructure/timeutil"
	"github.com/tripfinder/cheapest-trip-finder/internal/usecase"
)

// Exit code contract: 0 a result was printed, 1 startup or auth failure
// (no token means no search), 2 the search completed with no results.
const (
	exitOK      = 0
	exitFailure = 1
	exitNoData  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one search and returns the process exit code. It is separated
// from main so the exit code contract stays testable.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tripfinder", flag.ContinueOnError)
	fs.SetOutput(stderr)

	origin := fs.String("origin", "", "IATA code of the departure airport or city (required)")
	destination := fs.String("destination", "", "IATA code of the arrival airport or city (required)")
	maxConnections := fs.Int("max-connections", -1, "maximum connections per itinerary (default from config)")
	windowDays := fs.Int("window-days", 0, "forward-looking candidate window in days (default from config)")

	if err := fs.Parse(args); err != nil {
		return exitFailure
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "configuration error: %v\n", err)
		return exitFailure
	}

	log := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		ServiceName: "trip-finder",
	})

	criteria := cfg.Criteria(*origin, *destination)
	if *maxConnections >= 0 {
		criteria.MaxConnections = *maxConnections
	}
	if *windowDays > 0 {
		criteria.WindowDays = *windowDays
	}
	criteria.SetDefaults()

	if err := criteria.Validate(); err != nil {
		fmt.Fprintf(stderr, "invalid search: %v\n", err)
		fs.Usage()
		return exitFailure
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := amadeus.NewClient(amadeus.Config{
		BaseURL:      cfg.Amadeus.BaseURL,
		ClientID:     cfg.Amadeus.ClientID,
		ClientSecret: cfg.Amadeus.ClientSecret,
		Timeout:      cfg.Amadeus.HTTPTimeout,
	}, log)

	// Fail fast: no token, no search.
	if err := client.Authenticate(ctx); err != nil {
		log.Error().Err(err).Msg("could not acquire an API token, check credentials")
		fmt.Fprintln(stderr, "Could not proceed without an API token. Please check your credentials.")
		return exitFailure
	}

	searcher := usecase.NewTripSearchUseCase(client, client, timeutil.NewRealClock(), log)
	resolver := usecase.NewAirlineResolver(client, log)
	presenter := cli.NewPresenter(stdout, resolver)

	result, err := searcher.Search(ctx, criteria)
	if err != nil {
		if errors.Is(err, domain.ErrNoOffers) {
			presenter.PresentNoResults(criteria.Origin, criteria.Destination)
			return exitNoData
		}
		log.Error().Err(err).Msg("search failed")
		return exitFailure
	}

	presenter.Present(ctx, result)
	return exitOK
}

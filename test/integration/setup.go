// Package integration exercises the assembled search stack against a
// scripted upstream API: real HTTP client, token exchange, orchestration,
// aggregation and presentation, with only the network faked.
package integration

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/tripfinder/cheapest-trip-finder/internal/adapter/amadeus"
	"github.com/tripfinder/cheapest-trip-finder/internal/domain"
	"github.com/tripfinder/cheapest-trip-finder/internal/infrastructure/logger"
	"github.com/tripfinder/cheapest-trip-finder/internal/infrastructure/timeutil"
	"github.com/tripfinder/cheapest-trip-finder/internal/usecase"
)

// upstream is a scripted stand-in for the flight API. Each field holds the
// JSON body an endpoint answers with; OffersByDate keys on the departureDate
// query parameter so tests shape per-date confirmations independently.
type upstream struct {
	DatesStatus  int
	DatesBody    string
	OffersByDate map[string]string
	AirlinesBody string

	mu          sync.Mutex
	tokenCalls  int
	returnDates map[string]string
}

func newUpstream() *upstream {
	return &upstream{
		DatesStatus:  http.StatusOK,
		DatesBody:    `{"data": []}`,
		OffersByDate: make(map[string]string),
		AirlinesBody: `{"data": []}`,
		returnDates:  make(map[string]string),
	}
}

// start serves the scripted endpoints and returns the base URL.
func (u *upstream) start(t *testing.T) string {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		if r.FormValue("grant_type") != "client_credentials" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		u.mu.Lock()
		u.tokenCalls++
		u.mu.Unlock()
		fmt.Fprint(w, `{"access_token": "integration-token", "expires_in": 1799}`)
	})

	authorized := func(handler http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer integration-token" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			handler(w, r)
		}
	}

	mux.HandleFunc("/v1/shopping/flight-dates", authorized(func(w http.ResponseWriter, r *http.Request) {
		if u.DatesStatus != http.StatusOK {
			w.WriteHeader(u.DatesStatus)
			return
		}
		fmt.Fprint(w, u.DatesBody)
	}))

	mux.HandleFunc("/v2/shopping/flight-offers", authorized(func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("departureDate")
		u.mu.Lock()
		u.returnDates[date] = r.URL.Query().Get("returnDate")
		u.mu.Unlock()

		body, ok := u.OffersByDate[date]
		if !ok {
			body = `{"data": []}`
		}
		fmt.Fprint(w, body)
	}))

	mux.HandleFunc("/v1/reference-data/airlines", authorized(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, u.AirlinesBody)
	}))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server.URL
}

// tokenCallCount reports how many token exchanges the upstream served.
func (u *upstream) tokenCallCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.tokenCalls
}

// returnDateFor reports the returnDate query parameter seen for a probe date.
func (u *upstream) returnDateFor(date string) string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.returnDates[date]
}

// newSearchStack assembles the client, use case and resolver over the
// scripted upstream, with the clock pinned so probe windows stay stable.
func newSearchStack(t *testing.T, u *upstream, now time.Time) (usecase.TripSearchUseCase, *usecase.AirlineResolver) {
	t.Helper()

	client := amadeus.NewClient(amadeus.Config{
		BaseURL:      u.start(t),
		ClientID:     "integration-id",
		ClientSecret: "integration-secret",
		Timeout:      5 * time.Second,
	}, logger.Nop())

	searcher := usecase.NewTripSearchUseCase(client, client, timeutil.NewMockClock(now), logger.Nop())
	resolver := usecase.NewAirlineResolver(client, logger.Nop())
	return searcher, resolver
}

// defaultCriteria returns a validated BER to TPE search with stock parameters.
func defaultCriteria() domain.SearchCriteria {
	criteria := domain.SearchCriteria{
		Origin:         "BER",
		Destination:    "TPE",
		MaxConnections: 2,
	}
	criteria.SetDefaults()
	return criteria
}

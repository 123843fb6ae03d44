// Package http provides the HTTP handler layer for the trip search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"github.com/tripfinder/cheapest-trip-finder/internal/domain"
)

// SearchTripsRequest is the request body for POST /api/v1/trips/search.
// Origin and destination are required; every other field falls back to the
// server's configured defaults when zero.
type SearchTripsRequest struct {
	// Origin is the IATA code of the departure airport or city
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport or city
	Destination string `json:"destination"`

	// WindowDays overrides the candidate scan window
	WindowDays int `json:"windowDays,omitempty"`

	// TopCandidates overrides how many candidate dates are confirmed
	TopCandidates int `json:"topCandidates,omitempty"`

	// MinStayDays and MaxStayDays override the trip length bounds
	MinStayDays int `json:"minStayDays,omitempty"`
	MaxStayDays int `json:"maxStayDays,omitempty"`

	// MaxConnections overrides the connection filter. A pointer so that an
	// explicit zero (direct flights only) is distinguishable from unset.
	MaxConnections *int `json:"maxConnections,omitempty"`

	// Currency overrides the quote currency
	Currency string `json:"currency,omitempty"`
}

// ToCriteria merges the request over the given defaults.
func (r *SearchTripsRequest) ToCriteria(defaults domain.SearchCriteria) domain.SearchCriteria {
	criteria := defaults
	criteria.Origin = r.Origin
	criteria.Destination = r.Destination

	if r.WindowDays > 0 {
		criteria.WindowDays = r.WindowDays
	}
	if r.TopCandidates > 0 {
		criteria.TopCandidates = r.TopCandidates
	}
	if r.MinStayDays > 0 {
		criteria.MinStayDays = r.MinStayDays
	}
	if r.MaxStayDays > 0 {
		criteria.MaxStayDays = r.MaxStayDays
	}
	if r.MaxConnections != nil {
		criteria.MaxConnections = *r.MaxConnections
	}
	if r.Currency != "" {
		criteria.Currency = r.Currency
	}

	criteria.SetDefaults()
	return criteria
}

// SearchTripsResponse is the response body for a successful search. It
// embeds the search result and adds resolved airline names keyed by carrier
// code, so API consumers need no second lookup.
type SearchTripsResponse struct {
	domain.TripSearchResult

	// AirlineNames maps carrier codes appearing in the result to display names
	AirlineNames map[string]string `json:"airlineNames"`
}

package domain

import "context"

//go:generate mockgen -source=ports.go -destination=mock_services.go -package=domain

// CandidateQuery describes one inspirational ("cheapest dates") lookup.
type CandidateQuery struct {
	// Origin is the IATA code of the departure airport or city
	Origin string

	// Destination is the IATA code of the arrival airport or city
	Destination string

	// DepartureFrom is the first date of the scanned window (YYYY-MM-DD)
	DepartureFrom string

	// DepartureTo is the last date of the scanned window (YYYY-MM-DD)
	DepartureTo string

	// OneWay restricts the scan to outbound dates only
	OneWay bool
}

// CandidateDateService is the inspirational collaborator. It returns
// indicative low-price departure dates for a route.
//
// Implementations must return ErrRouteNotFound when the upstream index has
// no cached data for the route; that is a valid empty outcome, not a failure.
type CandidateDateService interface {
	FindDates(ctx context.Context, query CandidateQuery) ([]CandidateDate, error)
}

// OfferQuery describes one live ("flight offers") lookup for a concrete
// departure date.
type OfferQuery struct {
	// Origin is the IATA code of the departure airport or city
	Origin string

	// Destination is the IATA code of the arrival airport or city
	Destination string

	// DepartureDate is the outbound date (YYYY-MM-DD)
	DepartureDate string

	// ReturnDate is the inbound date (YYYY-MM-DD); empty for one-way
	ReturnDate string

	// Adults is the passenger count
	Adults int

	// Currency is the ISO 4217 currency code for quoted prices
	Currency string

	// MaxOffers bounds how many offers the upstream may return
	MaxOffers int
}

// LiveOfferService is the bookable-offer collaborator. An empty result slice
// is a valid outcome. Connection-count filtering is never delegated to the
// upstream query; callers filter the returned itineraries locally.
type LiveOfferService interface {
	SearchOffers(ctx context.Context, query OfferQuery) ([]Offer, error)
}

// AirlineReferenceService resolves a carrier code to a display name.
// Implementations return ErrAirlineNotFound when the code is unknown.
type AirlineReferenceService interface {
	LookupAirline(ctx context.Context, code string) (string, error)
}

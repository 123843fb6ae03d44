// Package domain contains the core business entities and rules for the cheapest-trip finder.
// These entities are provider-agnostic and form the foundation upon which all other components are built.
package domain

import "time"

// PriceQuote is an immutable price attached to an offer or candidate date.
type PriceQuote struct {
	// Amount is the numeric price value. Zero means the upstream record
	// carried no usable price and the record should be skipped.
	Amount float64 `json:"amount"`

	// Currency is the ISO 4217 currency code (e.g., "EUR", "USD")
	Currency string `json:"currency"`
}

// IsValid reports whether the quote carries a usable price.
func (p PriceQuote) IsValid() bool {
	return p.Amount > 0
}

// SegmentPoint represents one end of a flight segment (departure or arrival).
type SegmentPoint struct {
	// AirportCode is the IATA airport code (e.g., "BER")
	AirportCode string `json:"airportCode"`

	// At is the scheduled time, expressed in the airport's local time
	At time.Time `json:"at"`
}

// Segment is a single non-stop flight leg. It is immutable once received.
type Segment struct {
	// CarrierCode is the IATA airline code operating this leg (e.g., "CI")
	CarrierCode string `json:"carrierCode"`

	// FlightNumber is the airline's flight number (e.g., "62")
	FlightNumber string `json:"flightNumber"`

	// Departure is the origin airport and local departure time
	Departure SegmentPoint `json:"departure"`

	// Arrival is the destination airport and local arrival time
	Arrival SegmentPoint `json:"arrival"`
}

// Itinerary is one direction of travel (outbound or inbound), composed of
// one or more segments in travel order.
type Itinerary struct {
	// Segments is the ordered sequence of flight legs
	Segments []Segment `json:"segments"`

	// Duration is the total travel time in the compact ISO-8601 encoding
	// returned by the upstream (e.g., "PT14H35M"). Parsed on demand via
	// ParseISODuration.
	Duration string `json:"duration"`
}

// ConnectionCount returns the number of stops within the itinerary,
// equal to segment count minus one. An empty itinerary has zero connections.
func (i Itinerary) ConnectionCount() int {
	if len(i.Segments) == 0 {
		return 0
	}
	return len(i.Segments) - 1
}

// Offer is a complete, priced, bookable travel proposal returned by the live
// search collaborator. It is the unit of comparison for "cheapest".
type Offer struct {
	// ID is a unique identifier for this offer (generated internally)
	ID string `json:"id"`

	// Price is the total price for all itineraries
	Price PriceQuote `json:"price"`

	// Itineraries holds one entry for a one-way trip, two for a round trip
	Itineraries []Itinerary `json:"itineraries"`
}

// MaxConnections returns the highest connection count across all itineraries.
func (o Offer) MaxConnections() int {
	max := 0
	for _, it := range o.Itineraries {
		if c := it.ConnectionCount(); c > max {
			max = c
		}
	}
	return max
}

// WithinConnectionLimit reports whether every itinerary of the offer has at
// most limit connections. Filtering happens here, locally, because the live
// collaborator's connection query parameter is not reliable.
func (o Offer) WithinConnectionLimit(limit int) bool {
	return o.MaxConnections() <= limit
}

// CandidateDate is an indicative, unconfirmed low-price departure date from
// the inspirational collaborator. It ranks dates and is never booked directly.
type CandidateDate struct {
	// DepartureDate is the suggested departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// Price is the indicative price for that date
	Price PriceQuote `json:"price"`
}

// DatedOffer pairs an offer (or an indicative price wrapped as an offer) with
// the departure date it was probed for. It is the input record of the
// monthly aggregation.
type DatedOffer struct {
	// DepartureDate is the probed departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// Offer is the priced result for that date
	Offer Offer `json:"offer"`
}

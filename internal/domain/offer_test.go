package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// segments builds n placeholder segments for connection-count tests.
func segments(n int) []Segment {
	segs := make([]Segment, n)
	for i := range segs {
		segs[i] = Segment{CarrierCode: "CI", FlightNumber: "62"}
	}
	return segs
}

func TestItineraryConnectionCount(t *testing.T) {
	tests := []struct {
		name     string
		segments int
		want     int
	}{
		{name: "direct flight", segments: 1, want: 0},
		{name: "one connection", segments: 2, want: 1},
		{name: "two connections", segments: 3, want: 2},
		{name: "empty itinerary", segments: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := Itinerary{Segments: segments(tt.segments)}
			assert.Equal(t, tt.want, it.ConnectionCount())
		})
	}
}

func TestOfferMaxConnections(t *testing.T) {
	offer := Offer{
		Itineraries: []Itinerary{
			{Segments: segments(1)},
			{Segments: segments(3)},
		},
	}

	assert.Equal(t, 2, offer.MaxConnections())
}

func TestOfferWithinConnectionLimit(t *testing.T) {
	tests := []struct {
		name        string
		itineraries []Itinerary
		limit       int
		want        bool
	}{
		{
			name:        "direct round trip within any limit",
			itineraries: []Itinerary{{Segments: segments(1)}, {Segments: segments(1)}},
			limit:       0,
			want:        true,
		},
		{
			name:        "inbound leg exceeds limit",
			itineraries: []Itinerary{{Segments: segments(1)}, {Segments: segments(3)}},
			limit:       1,
			want:        false,
		},
		{
			name:        "exactly at limit",
			itineraries: []Itinerary{{Segments: segments(2)}},
			limit:       1,
			want:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer := Offer{Itineraries: tt.itineraries}
			assert.Equal(t, tt.want, offer.WithinConnectionLimit(tt.limit))
		})
	}
}

func TestPriceQuoteIsValid(t *testing.T) {
	assert.True(t, PriceQuote{Amount: 410.50, Currency: "EUR"}.IsValid())
	assert.False(t, PriceQuote{Amount: 0, Currency: "EUR"}.IsValid())
	assert.False(t, PriceQuote{Amount: -1, Currency: "EUR"}.IsValid())
}

func TestMonthlySummarySortedMonths(t *testing.T) {
	summary := MonthlySummary{
		Months: map[string]DatedOffer{
			"2025-03": {DepartureDate: "2025-03-17"},
			"2025-01": {DepartureDate: "2025-01-05"},
			"2025-11": {DepartureDate: "2025-11-20"},
		},
	}

	assert.Equal(t, []string{"2025-01", "2025-03", "2025-11"}, summary.SortedMonths())
	assert.False(t, summary.IsEmpty())
	assert.True(t, MonthlySummary{}.IsEmpty())
}

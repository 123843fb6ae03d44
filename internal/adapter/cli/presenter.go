// Package cli renders trip search results for a human operator.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/tripfinder/cheapest-trip-finder/internal/domain"
	"github.com/tripfinder/cheapest-trip-finder/internal/usecase"
)

// localClockLayout renders segment times as local wall-clock times.
const localClockLayout = "15:04"

// Presenter formats search results as a plain-text summary. Airline codes
// are resolved to names through the shared resolver, so repeated carriers
// cost at most one reference-data lookup.
type Presenter struct {
	w        io.Writer
	resolver *usecase.AirlineResolver
}

// NewPresenter creates a Presenter writing to w.
func NewPresenter(w io.Writer, resolver *usecase.AirlineResolver) *Presenter {
	return &Presenter{w: w, resolver: resolver}
}

// Present writes the full summary for a completed search: the indicative
// per-month price trend, the confirmed per-month cheapest offers, and the
// overall cheapest trip with per-segment detail.
func (p *Presenter) Present(ctx context.Context, result *domain.TripSearchResult) {
	origin, destination := result.Criteria.Origin, result.Criteria.Destination
	currency := result.Criteria.Currency

	fmt.Fprintln(p.w, "=====================================================")
	fmt.Fprintf(p.w, "   Cheapest Trip Finder (%s -> %s)\n", origin, destination)
	fmt.Fprintln(p.w, "=====================================================")

	if !result.IndicativeMonths.IsEmpty() {
		fmt.Fprintf(p.w, "\n--- Cheapest Indicative Price per Month ---\n")
		for _, month := range result.IndicativeMonths.SortedMonths() {
			rec := result.IndicativeMonths.Months[month]
			fmt.Fprintf(p.w, "  - %-15s %s on %s\n",
				monthName(month)+":", formatPrice(rec.Offer.Price, currency), rec.DepartureDate)
		}
	}

	if result.Metadata.FallbackUsed {
		fmt.Fprintf(p.w, "\nNo candidate dates for this route; probed fixed calendar days instead.\n")
	}

	fmt.Fprintf(p.w, "\n--- Cheapest Confirmed Offer per Month ---\n")
	for _, month := range result.ConfirmedMonths.SortedMonths() {
		rec := result.ConfirmedMonths.Months[month]
		fmt.Fprintf(p.w, "  - %-15s %s on %s, %d connection(s), %s\n",
			monthName(month)+":",
			formatPrice(rec.Offer.Price, currency),
			rec.DepartureDate,
			rec.Offer.MaxConnections(),
			p.resolver.Resolve(ctx, leadCarrier(rec.Offer)))
	}

	fmt.Fprintf(p.w, "\n--- Overall Cheapest Trip Found ---\n")
	fmt.Fprintf(p.w, "  Price: %s\n", formatPrice(result.Cheapest.Offer.Price, currency))
	fmt.Fprintf(p.w, "  Date:  %s\n", result.Cheapest.DepartureDate)
	p.presentItineraries(ctx, result.Cheapest.Offer)

	fmt.Fprintln(p.w, "\n-----------------------------------------")
	fmt.Fprintln(p.w, "(Note: test-environment data cannot be booked.)")
}

// PresentNoResults reports the distinct no-results outcome: the search
// completed, the route simply has no data.
func (p *Presenter) PresentNoResults(origin, destination string) {
	fmt.Fprintf(p.w, "No flight data found for %s -> %s.\n", origin, destination)
	fmt.Fprintln(p.w, "The upstream may not have data for this route; try another route or a wider window.")
}

// presentItineraries writes per-segment route detail for each itinerary.
func (p *Presenter) presentItineraries(ctx context.Context, offer domain.Offer) {
	for i, itinerary := range offer.Itineraries {
		duration := domain.ParseISODuration(itinerary.Duration)
		fmt.Fprintf(p.w, "  Itinerary %d (%d connection(s), %s):\n",
			i+1, itinerary.ConnectionCount(), duration.Format())

		for _, seg := range itinerary.Segments {
			fmt.Fprintf(p.w, "    %s %-5s %s %s -> %s %s  (%s)\n",
				seg.CarrierCode,
				seg.FlightNumber,
				seg.Departure.AirportCode,
				seg.Departure.At.Format(localClockLayout),
				seg.Arrival.AirportCode,
				seg.Arrival.At.Format(localClockLayout),
				p.resolver.Resolve(ctx, seg.CarrierCode))
		}
	}
}

// leadCarrier returns the operating carrier of the first segment, empty for
// an offer without segments (which the resolver renders as Unknown).
func leadCarrier(offer domain.Offer) string {
	if len(offer.Itineraries) == 0 || len(offer.Itineraries[0].Segments) == 0 {
		return ""
	}
	return offer.Itineraries[0].Segments[0].CarrierCode
}

// monthName renders a YYYY-MM month key as "January 2006"; the raw key is
// kept when it does not parse.
func monthName(monthKey string) string {
	t, err := time.Parse(domain.MonthKeyLayout, monthKey)
	if err != nil {
		return monthKey
	}
	return t.Format("January 2006")
}

// formatPrice renders a quote, preferring the quote's own currency and
// falling back to the search currency for indicative records that carry none.
func formatPrice(price domain.PriceQuote, fallbackCurrency string) string {
	currency := price.Currency
	if currency == "" {
		currency = fallbackCurrency
	}
	return fmt.Sprintf("%s %.2f", currency, price.Amount)
}

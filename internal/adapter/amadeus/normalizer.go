package amadeus

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/tripfinder/cheapest-trip-finder/internal/domain"
)

// localTimeLayout is the zone-less local timestamp format Amadeus uses for
// segment departure and arrival times.
const localTimeLayout = "2006-01-02T15:04:05"

// normalizeCandidates converts flight-dates records to domain candidates.
// Records with a missing date or an unusable price are skipped; one bad
// record must never drop the remaining ones.
func normalizeCandidates(resources []flightDateResource) []domain.CandidateDate {
	candidates := make([]domain.CandidateDate, 0, len(resources))
	for _, r := range resources {
		price := normalizePrice(r.Price)
		if r.DepartureDate == "" || !price.IsValid() {
			continue
		}
		candidates = append(candidates, domain.CandidateDate{
			DepartureDate: r.DepartureDate,
			Price:         price,
		})
	}
	return candidates
}

// normalizeOffers converts flight-offers records to domain offers, skipping
// records without a usable price or without any segment.
func normalizeOffers(resources []flightOfferResource) []domain.Offer {
	offers := make([]domain.Offer, 0, len(resources))
	for _, r := range resources {
		offer, ok := normalizeOffer(r)
		if !ok {
			continue
		}
		offers = append(offers, offer)
	}
	return offers
}

// normalizeOffer converts a single offer record. ok is false when the record
// is unusable.
func normalizeOffer(r flightOfferResource) (domain.Offer, bool) {
	price := normalizePrice(r.Price)
	if !price.IsValid() || len(r.Itineraries) == 0 {
		return domain.Offer{}, false
	}

	itineraries := make([]domain.Itinerary, 0, len(r.Itineraries))
	for _, it := range r.Itineraries {
		if len(it.Segments) == 0 {
			return domain.Offer{}, false
		}
		segments := make([]domain.Segment, 0, len(it.Segments))
		for _, seg := range it.Segments {
			segments = append(segments, domain.Segment{
				CarrierCode:  seg.CarrierCode,
				FlightNumber: seg.Number,
				Departure: domain.SegmentPoint{
					AirportCode: seg.Departure.IataCode,
					At:          parseLocalTime(seg.Departure.At),
				},
				Arrival: domain.SegmentPoint{
					AirportCode: seg.Arrival.IataCode,
					At:          parseLocalTime(seg.Arrival.At),
				},
			})
		}
		itineraries = append(itineraries, domain.Itinerary{
			Segments: segments,
			Duration: it.Duration,
		})
	}

	return domain.Offer{
		ID:          uuid.NewString(),
		Price:       price,
		Itineraries: itineraries,
	}, true
}

// normalizePrice converts a wire price to a domain quote. grandTotal is
// preferred over total; a malformed amount yields an invalid (zero) quote so
// the caller skips the record.
func normalizePrice(p priceResource) domain.PriceQuote {
	raw := p.GrandTotal
	if raw == "" {
		raw = p.Total
	}
	amount, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		amount = 0
	}
	return domain.PriceQuote{Amount: amount, Currency: p.Currency}
}

// parseLocalTime parses an Amadeus local timestamp. Times carry no zone
// offset and stay in the airport's local wall clock; a zoned timestamp is
// accepted as a fallback. Unparsable input yields the zero time rather than
// failing the offer.
func parseLocalTime(s string) time.Time {
	if t, err := time.Parse(localTimeLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

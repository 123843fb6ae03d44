package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/tripfinder/cheapest-trip-finder/internal/domain"
	"github.com/tripfinder/cheapest-trip-finder/internal/infrastructure/logger"
	"github.com/tripfinder/cheapest-trip-finder/internal/usecase"
)

// newResolver builds a resolver whose reference service knows the given codes.
func newResolver(t *testing.T, names map[string]string) *usecase.AirlineResolver {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := domain.NewMockAirlineReferenceService(ctrl)
	service.EXPECT().LookupAirline(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, code string) (string, error) {
			if name, ok := names[code]; ok {
				return name, nil
			}
			return "", domain.ErrAirlineNotFound
		}).AnyTimes()

	return usecase.NewAirlineResolver(service, logger.Nop())
}

// sampleResult builds a result with one confirmed offer in March.
func sampleResult() *domain.TripSearchResult {
	criteria := domain.SearchCriteria{Origin: "BER", Destination: "TPE", Currency: "EUR"}

	offer := domain.Offer{
		ID:    "offer-1",
		Price: domain.PriceQuote{Amount: 410.55, Currency: "EUR"},
		Itineraries: []domain.Itinerary{
			{
				Duration: "PT14H35M",
				Segments: []domain.Segment{
					{
						CarrierCode:  "TK",
						FlightNumber: "1724",
						Departure:    domain.SegmentPoint{AirportCode: "BER", At: time.Date(2025, 3, 17, 11, 45, 0, 0, time.UTC)},
						Arrival:      domain.SegmentPoint{AirportCode: "IST", At: time.Date(2025, 3, 17, 16, 10, 0, 0, time.UTC)},
					},
					{
						CarrierCode:  "TK",
						FlightNumber: "24",
						Departure:    domain.SegmentPoint{AirportCode: "IST", At: time.Date(2025, 3, 17, 18, 5, 0, 0, time.UTC)},
						Arrival:      domain.SegmentPoint{AirportCode: "TPE", At: time.Date(2025, 3, 18, 9, 20, 0, 0, time.UTC)},
					},
				},
			},
		},
	}

	confirmed := []domain.DatedOffer{{DepartureDate: "2025-03-17", Offer: offer}}
	candidates := []domain.CandidateDate{
		{DepartureDate: "2025-03-17", Price: domain.PriceQuote{Amount: 420}},
		{DepartureDate: "2025-04-02", Price: domain.PriceQuote{Amount: 515}},
	}

	return &domain.TripSearchResult{
		Criteria:         criteria,
		Candidates:       candidates,
		Confirmed:        confirmed,
		Cheapest:         confirmed[0],
		ConfirmedMonths:  usecase.AggregateMonthly(confirmed),
		IndicativeMonths: usecase.AggregateMonthly([]domain.DatedOffer{
			{DepartureDate: "2025-03-17", Offer: domain.Offer{Price: domain.PriceQuote{Amount: 420}}},
			{DepartureDate: "2025-04-02", Offer: domain.Offer{Price: domain.PriceQuote{Amount: 515}}},
		}),
		Metadata: domain.SearchMetadata{CandidatesFound: 2, DatesProbed: 2, OffersConfirmed: 1},
	}
}

func TestPresent(t *testing.T) {
	var buf bytes.Buffer
	resolver := newResolver(t, map[string]string{"TK": "TURKISH AIRLINES"})
	presenter := NewPresenter(&buf, resolver)

	presenter.Present(context.Background(), sampleResult())
	out := buf.String()

	// Route header.
	assert.Contains(t, out, "BER -> TPE")

	// Indicative trend with month names and fallback currency.
	assert.Contains(t, out, "March 2025:")
	assert.Contains(t, out, "April 2025:")
	assert.Contains(t, out, "EUR 420.00 on 2025-03-17")

	// Confirmed monthly line with connections and resolved airline.
	assert.Contains(t, out, "EUR 410.55 on 2025-03-17, 1 connection(s), TURKISH AIRLINES")

	// Overall block with per-segment detail: local times, flight numbers,
	// airline names and total duration.
	assert.Contains(t, out, "Price: EUR 410.55")
	assert.Contains(t, out, "Date:  2025-03-17")
	assert.Contains(t, out, "1 connection(s), 14h 35m")
	assert.Contains(t, out, "TK 1724")
	assert.Contains(t, out, "BER 11:45 -> IST 16:10")
	assert.Contains(t, out, "(TURKISH AIRLINES)")
}

func TestPresent_FallbackNotice(t *testing.T) {
	var buf bytes.Buffer
	presenter := NewPresenter(&buf, newResolver(t, nil))

	result := sampleResult()
	result.Candidates = nil
	result.IndicativeMonths = usecase.AggregateMonthly(nil)
	result.Metadata.FallbackUsed = true

	presenter.Present(context.Background(), result)
	out := buf.String()

	assert.Contains(t, out, "probed fixed calendar days")
	assert.NotContains(t, out, "Indicative Price per Month")
}

func TestPresent_UnresolvedCarrierFallsBackToCode(t *testing.T) {
	var buf bytes.Buffer
	presenter := NewPresenter(&buf, newResolver(t, nil))

	presenter.Present(context.Background(), sampleResult())

	assert.Contains(t, buf.String(), "(TK)")
}

func TestPresentNoResults(t *testing.T) {
	var buf bytes.Buffer
	presenter := NewPresenter(&buf, newResolver(t, nil))

	presenter.PresentNoResults("BER", "TPE")
	out := buf.String()

	assert.Contains(t, out, "No flight data found for BER -> TPE")
}

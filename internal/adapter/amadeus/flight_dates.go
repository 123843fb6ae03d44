package amadeus

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/tripfinder/cheapest-trip-finder/internal/domain"
)

// FindDates implements domain.CandidateDateService against the flight-dates
// endpoint.
//
// A 404 from this endpoint means the route is not present in the upstream
// inspirational index; that is a valid empty outcome and maps to
// ErrRouteNotFound so the caller can fall back instead of treating it as a
// transport failure.
func (c *Client) FindDates(ctx context.Context, query domain.CandidateQuery) ([]domain.CandidateDate, error) {
	params := url.Values{}
	params.Set("origin", query.Origin)
	params.Set("destination", query.Destination)
	params.Set("departureDate", query.DepartureFrom+","+query.DepartureTo)
	if query.OneWay {
		params.Set("oneWay", "true")
	}

	var body flightDatesResponse
	if err := c.getJSON(ctx, "flight-dates", flightDatesPath, params, &body); err != nil {
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) && upstream.StatusCode == http.StatusNotFound {
			return nil, domain.ErrRouteNotFound
		}
		return nil, err
	}

	candidates := normalizeCandidates(body.Data)
	c.log.Debug().
		Str("origin", query.Origin).
		Str("destination", query.Destination).
		Int("candidates", len(candidates)).
		Msg("flight-dates lookup completed")

	return candidates, nil
}

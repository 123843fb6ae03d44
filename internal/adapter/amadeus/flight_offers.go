package amadeus

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tripfinder/cheapest-trip-finder/internal/domain"
)

// SearchOffers implements domain.LiveOfferService against the flight-offers
// endpoint. The request never includes a connection-count parameter: the
// upstream filter is documented as unreliable, so callers filter the
// returned itineraries locally.
func (c *Client) SearchOffers(ctx context.Context, query domain.OfferQuery) ([]domain.Offer, error) {
	adults := query.Adults
	if adults < 1 {
		adults = 1
	}
	maxOffers := query.MaxOffers
	if maxOffers < 1 || maxOffers > domain.MaxOfferRequest {
		maxOffers = domain.MaxOfferRequest
	}

	params := url.Values{}
	params.Set("originLocationCode", query.Origin)
	params.Set("destinationLocationCode", query.Destination)
	params.Set("departureDate", query.DepartureDate)
	if query.ReturnDate != "" {
		params.Set("returnDate", query.ReturnDate)
	}
	params.Set("adults", strconv.Itoa(adults))
	if query.Currency != "" {
		params.Set("currencyCode", query.Currency)
	}
	params.Set("max", strconv.Itoa(maxOffers))

	var body flightOffersResponse
	if err := c.getJSON(ctx, "flight-offers", flightOffersPath, params, &body); err != nil {
		return nil, err
	}

	offers := normalizeOffers(body.Data)
	c.log.Debug().
		Str("departure", query.DepartureDate).
		Str("return", query.ReturnDate).
		Int("offers", len(offers)).
		Msg("flight-offers lookup completed")

	return offers, nil
}

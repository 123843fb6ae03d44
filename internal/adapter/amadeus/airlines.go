package amadeus

import (
	"context"
	"net/url"

	"github.com/tripfinder/cheapest-trip-finder/internal/domain"
)

// LookupAirline implements domain.AirlineReferenceService against the
// airlines reference-data endpoint. The business name is preferred over the
// common name; an empty result maps to ErrAirlineNotFound so the resolver
// can fall back to the code itself.
func (c *Client) LookupAirline(ctx context.Context, code string) (string, error) {
	params := url.Values{}
	params.Set("airlineCodes", code)

	var body airlinesResponse
	if err := c.getJSON(ctx, "airlines", airlinesPath, params, &body); err != nil {
		return "", err
	}

	for _, airline := range body.Data {
		if airline.BusinessName != "" {
			return airline.BusinessName, nil
		}
		if airline.CommonName != "" {
			return airline.CommonName, nil
		}
	}

	return "", domain.ErrAirlineNotFound
}

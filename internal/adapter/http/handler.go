package http

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/tripfinder/cheapest-trip-finder/internal/adapter/http/response"
	"github.com/tripfinder/cheapest-trip-finder/internal/domain"
	"github.com/tripfinder/cheapest-trip-finder/internal/usecase"
)

// TripHandler handles HTTP requests for trip search endpoints.
type TripHandler struct {
	useCase  usecase.TripSearchUseCase
	resolver *usecase.AirlineResolver
	defaults domain.SearchCriteria
}

// NewTripHandler creates a TripHandler. defaults supplies the configured
// search parameters merged under each request.
func NewTripHandler(uc usecase.TripSearchUseCase, resolver *usecase.AirlineResolver, defaults domain.SearchCriteria) *TripHandler {
	return &TripHandler{
		useCase:  uc,
		resolver: resolver,
		defaults: defaults,
	}
}

// SearchTrips handles POST /api/v1/trips/search.
func (h *TripHandler) SearchTrips(c echo.Context) error {
	var req SearchTripsRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid request body")
	}

	criteria := req.ToCriteria(h.defaults)
	if err := criteria.Validate(); err != nil {
		return response.BadRequest(c, err.Error())
	}

	ctx := c.Request().Context()
	result, err := h.useCase.Search(ctx, criteria)
	if err != nil {
		return h.handleSearchError(c, err)
	}

	return response.OK(c, &SearchTripsResponse{
		TripSearchResult: *result,
		AirlineNames:     h.resolveAirlines(c, result),
	})
}

// handleSearchError maps use-case errors to HTTP responses.
func (h *TripHandler) handleSearchError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNoOffers):
		return response.NoResults(c, "no flight data found for this route")
	case errors.Is(err, domain.ErrAuthFailed):
		return response.BadGateway(c, response.CodeAuthFailure, "upstream authentication failed")
	default:
		return response.BadGateway(c, response.CodeUpstreamFailure, "upstream search failed")
	}
}

// resolveAirlines collects the display names for every carrier code in the
// result's confirmed offers. The resolver caches, so duplicate codes cost a
// single lookup.
func (h *TripHandler) resolveAirlines(c echo.Context, result *domain.TripSearchResult) map[string]string {
	ctx := c.Request().Context()
	names := make(map[string]string)

	for _, rec := range result.Confirmed {
		for _, itinerary := range rec.Offer.Itineraries {
			for _, seg := range itinerary.Segments {
				if seg.CarrierCode == "" {
					continue
				}
				if _, ok := names[seg.CarrierCode]; !ok {
					names[seg.CarrierCode] = h.resolver.Resolve(ctx, seg.CarrierCode)
				}
			}
		}
	}

	return names
}

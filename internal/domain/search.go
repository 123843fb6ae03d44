package domain

import (
	"fmt"
	"regexp"
)

// Default values applied by SetDefaults.
const (
	DefaultWindowDays     = 180
	DefaultTopCandidates  = 5
	DefaultMinStayDays    = 7
	DefaultMaxStayDays    = 14
	DefaultMaxConnections = 2
	DefaultCurrency       = "EUR"
	DefaultMaxOffers      = 5
)

// MaxOfferRequest caps how many live offers a single confirmation call may
// request from the upstream.
const MaxOfferRequest = 5

// SearchCriteria defines the parameters for a cheapest-trip search.
type SearchCriteria struct {
	// Origin is the IATA code of the departure airport or city (e.g., "BER")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport or city (e.g., "TPE")
	Destination string `json:"destination"`

	// WindowDays is the forward-looking window, starting tomorrow, scanned
	// for candidate departure dates (default: 180)
	WindowDays int `json:"windowDays"`

	// TopCandidates is how many of the lowest-priced candidate dates are
	// confirmed against the live collaborator (default: 5)
	TopCandidates int `json:"topCandidates"`

	// MinStayDays is the minimum trip length in days (default: 7)
	MinStayDays int `json:"minStayDays"`

	// MaxStayDays is the maximum trip length in days (default: 14)
	MaxStayDays int `json:"maxStayDays"`

	// MaxConnections filters out offers where any itinerary has more
	// connections than this value (default: 2)
	MaxConnections int `json:"maxConnections"`

	// Currency is the ISO 4217 currency code for quoted prices (default: EUR)
	Currency string `json:"currency"`

	// MaxOffers bounds how many live offers are requested per probed date,
	// capped at MaxOfferRequest (default: 5)
	MaxOffers int `json:"maxOffers"`
}

// locationCodeRegex matches valid IATA location codes (3 uppercase letters).
var locationCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// Validate checks if the search criteria is valid.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (s *SearchCriteria) Validate() error {
	if s.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !locationCodeRegex.MatchString(s.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Origin)
	}

	if s.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !locationCodeRegex.MatchString(s.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, s.Destination)
	}

	if s.Origin == s.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	if s.WindowDays < 1 || s.WindowDays > 365 {
		return fmt.Errorf("%w: windowDays must be between 1 and 365, got %d", ErrInvalidRequest, s.WindowDays)
	}

	if s.TopCandidates < 1 {
		return fmt.Errorf("%w: topCandidates must be at least 1", ErrInvalidRequest)
	}

	if s.MinStayDays < 1 {
		return fmt.Errorf("%w: minStayDays must be at least 1", ErrInvalidRequest)
	}
	if s.MaxStayDays < s.MinStayDays {
		return fmt.Errorf("%w: maxStayDays (%d) must not be less than minStayDays (%d)",
			ErrInvalidRequest, s.MaxStayDays, s.MinStayDays)
	}

	if s.MaxConnections < 0 {
		return fmt.Errorf("%w: maxConnections must not be negative", ErrInvalidRequest)
	}

	if s.MaxOffers < 1 || s.MaxOffers > MaxOfferRequest {
		return fmt.Errorf("%w: maxOffers must be between 1 and %d, got %d",
			ErrInvalidRequest, MaxOfferRequest, s.MaxOffers)
	}

	return nil
}

// SetDefaults applies default values to unset optional fields. Origin and
// destination have no defaults and must always be supplied by the caller.
// MaxConnections defaults via the config layer rather than here, since zero
// (direct flights only) is a meaningful caller choice.
func (s *SearchCriteria) SetDefaults() {
	if s.WindowDays == 0 {
		s.WindowDays = DefaultWindowDays
	}
	if s.TopCandidates == 0 {
		s.TopCandidates = DefaultTopCandidates
	}
	if s.MinStayDays == 0 {
		s.MinStayDays = DefaultMinStayDays
	}
	if s.MaxStayDays == 0 {
		s.MaxStayDays = DefaultMaxStayDays
	}
	if s.Currency == "" {
		s.Currency = DefaultCurrency
	}
	if s.MaxOffers == 0 {
		s.MaxOffers = DefaultMaxOffers
	}
}

// StayDays returns the trip length used when computing a return date:
// the rounded midpoint of the configured stay bounds.
func (s *SearchCriteria) StayDays() int {
	return (s.MinStayDays + s.MaxStayDays + 1) / 2
}

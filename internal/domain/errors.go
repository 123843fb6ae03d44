package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the trip search flow. Callers match them with errors.Is.
var (
	// ErrInvalidRequest indicates invalid search criteria supplied by the caller.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrAuthFailed indicates the credential exchange with the upstream API
	// failed. It is fatal: no token means no search is attempted.
	ErrAuthFailed = errors.New("authentication failed")

	// ErrRouteNotFound indicates the inspirational index has no cached data
	// for the requested route. It is a valid empty outcome, not a transport
	// failure, and triggers the fallback probe strategy.
	ErrRouteNotFound = errors.New("route not found in upstream index")

	// ErrNoOffers indicates the search completed but no live offer could be
	// confirmed for any probed date. It is a reported outcome, distinct from
	// any transport failure.
	ErrNoOffers = errors.New("no offers found")

	// ErrAirlineNotFound indicates the reference-data collaborator has no
	// entry for a carrier code. The resolver falls back to the code itself.
	ErrAirlineNotFound = errors.New("airline not found")
)

// UpstreamError represents a transport-level or non-2xx failure from one of
// the upstream endpoints. Every component that receives one degrades to a
// defined empty or fallback value instead of propagating it.
type UpstreamError struct {
	// Endpoint names the upstream operation (e.g., "flight-dates")
	Endpoint string

	// StatusCode is the HTTP status, 0 for transport-level failures
	StatusCode int

	// Err is the underlying error, if any
	Err error
}

// Error implements the error interface.
func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("upstream %s failed: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("upstream %s failed with status %d", e.Endpoint, e.StatusCode)
}

// Unwrap returns the underlying error for errors.Is/errors.As chains.
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// NewUpstreamError creates an UpstreamError for a transport-level failure.
func NewUpstreamError(endpoint string, err error) *UpstreamError {
	return &UpstreamError{Endpoint: endpoint, Err: err}
}

// NewUpstreamStatusError creates an UpstreamError for a non-2xx response.
func NewUpstreamStatusError(endpoint string, status int) *UpstreamError {
	return &UpstreamError{Endpoint: endpoint, StatusCode: status}
}

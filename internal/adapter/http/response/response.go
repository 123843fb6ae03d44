// Package response provides standardized HTTP response builders for the trip
// search API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Machine-readable error codes returned in response bodies.
const (
	CodeInvalidRequest  = "INVALID_REQUEST"
	CodeNoResults       = "NO_RESULTS"
	CodeUpstreamFailure = "UPSTREAM_FAILURE"
	CodeAuthFailure     = "AUTH_FAILURE"
)

// ErrorDetail is the standard error response body.
type ErrorDetail struct {
	// Code is a stable machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable description
	Message string `json:"message"`
}

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, &ErrorDetail{
		Code:    CodeInvalidRequest,
		Message: message,
	})
}

// NoResults writes a 404 response for a search that completed without any
// confirmed offer. This is a reported outcome, not a transport failure.
func NoResults(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, &ErrorDetail{
		Code:    CodeNoResults,
		Message: message,
	})
}

// BadGateway writes a 502 response for fatal upstream failures.
func BadGateway(c echo.Context, code, message string) error {
	return c.JSON(http.StatusBadGateway, &ErrorDetail{
		Code:    code,
		Message: message,
	})
}

// OK writes a 200 response with the given body.
func OK(c echo.Context, body any) error {
	return c.JSON(http.StatusOK, body)
}

package models

import (
	"errors"
	"net/http"
)

// Error taxonomy for the read/write pipeline. Handlers wrap these with
// fmt.Errorf("...: %w", err) and translate them to HTTP statuses with
// StatusFor.
var (
	// ErrSourceUnavailable covers any upstream read/write failure:
	// network, auth, rate limit, timeout.
	ErrSourceUnavailable = errors.New("content source unavailable")

	// ErrUnauthorized is returned when a protected write is attempted
	// without a valid session credential.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidCredentials is returned on a login mismatch.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrServerMisconfigured is returned when required secrets or
	// connection parameters are absent from the environment.
	ErrServerMisconfigured = errors.New("server misconfigured")

	// ErrValidation covers malformed input: missing required fields,
	// unparsable URLs.
	ErrValidation = errors.New("validation failed")
)

// StatusFor maps a pipeline error to its HTTP status category.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

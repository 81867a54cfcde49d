package router

import "errors"

// ErrAppStateMissing is returned when a handler runs without the state middleware.
var ErrAppStateMissing = errors.New("application state not initialized")

// Problem codes returned in the "code" field of error bodies.
const (
	ErrInternalCode        = "internal_error"
	ErrInvalidRequestCode  = "invalid_request"
	ErrValidationCode      = "validation_failed"
	ErrSectionNotFoundCode = "section_not_found"
	ErrRateLimitedCode     = "rate_limited"
	ErrPayloadTooLargeCode = "payload_too_large"
	ErrNotFoundCode        = "not_found"
)

package utils

import "errors"

var (
	ErrInvalidTripRequest = errors.New("invalid trip request")
	ErrInvalidDateRange   = errors.New("check-out must be after check-in")
	ErrProviderExhausted  = errors.New("all generation providers failed")
	ErrEmptyCompletion    = errors.New("provider returned no usable content")
	ErrSessionNotFound    = errors.New("chat session not found")
)

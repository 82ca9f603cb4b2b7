package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrModelAPIFailure is returned when the model API call fails at the
	// transport level (network error, non-2xx status, malformed response)
	ErrModelAPIFailure = errors.New("model API request failed")

	// ErrExtraction is returned when the model response contains no
	// recoverable JSON product data
	ErrExtraction = errors.New("no parseable JSON in model response")

	// ErrEmptyCompletion is returned when the model API responds without
	// any completion choices
	ErrEmptyCompletion = errors.New("model returned an empty completion")

	// ErrEntryNotFound is returned when a history entry id does not exist
	ErrEntryNotFound = errors.New("history entry not found")
)

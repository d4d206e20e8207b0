package domain

import "errors"

var (
	// ErrInvalidInput signals malformed request content (e.g. invalid UTF-8).
	ErrInvalidInput = errors.New("invalid input")
	// ErrModelUnavailable signals that language resources failed to load.
	// Raised once at construction, never per request.
	ErrModelUnavailable = errors.New("language model unavailable")
	// ErrInternal signals an unexpected fault inside the pipeline.
	ErrInternal = errors.New("internal error")
)

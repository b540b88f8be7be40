package domain

import "errors"

var (
	// Common domain errors
	ErrInvalidArgument       = errors.New("invalid argument")
	ErrNoCompletionProvider  = errors.New("no completion provider configured")
	ErrCompletionUnavailable = errors.New("completion provider unavailable")
)

package domain

import "errors"

// Common domain errors
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrDuplicateEntry  = errors.New("duplicate entry")
	ErrInvalidTransition = errors.New("invalid ticket state transition")
)

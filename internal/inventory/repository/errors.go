package repository

import "errors"

var (
	// ErrNotFound is returned when no airport document matches a lookup.
	ErrNotFound = errors.New("airport not found")
)

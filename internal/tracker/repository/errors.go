package repository

import "errors"

var (
	// ErrNotFound is returned when no sheet exists for the given ID.
	ErrNotFound = errors.New("sheet not found")
)

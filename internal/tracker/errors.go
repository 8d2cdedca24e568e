package tracker

import "errors"

// Domain-specific errors for the tracker package.
var (
	ErrSheetNotFound  = errors.New("sheet not found")
	ErrInvalidEvent   = errors.New("edit event has invalid coordinates")
	ErrColumnNotFound = errors.New("column not found")
)

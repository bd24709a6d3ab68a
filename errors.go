package gridslice

import "errors"

// Common errors used throughout the gridslice package
var (
	// ErrConfigValidation is returned when configuration validation fails
	ErrConfigValidation = errors.New("configuration validation failed")
	// ErrOpenInput is returned when the named input file cannot be opened
	ErrOpenInput = errors.New("unable to open input file")
)

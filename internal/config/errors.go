package config

import "errors"

var (
	// ErrParsingEnvironment is returned when the environment cannot be read.
	ErrParsingEnvironment = errors.New("failed to parse environment")

	// ErrLoadingDotenv is returned when a .env file exists but cannot be loaded.
	ErrLoadingDotenv = errors.New("failed to load .env file")

	// ErrInvalidValue is returned for a numeric value outside its allowed range.
	ErrInvalidValue = errors.New("invalid value")
)

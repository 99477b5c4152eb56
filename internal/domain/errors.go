package domain

import "errors"

var (
	// ErrInvalidPreferences is returned when a preference profile carries
	// unknown enum members or malformed fields
	ErrInvalidPreferences = errors.New("invalid preference profile")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCatalogUnavailable is returned when the catalog source cannot be read
	ErrCatalogUnavailable = errors.New("catalog source unavailable")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)

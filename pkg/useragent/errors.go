package useragent

import "errors"

var (
	// ErrInvalidInput is returned when a value that is neither a string nor
	// absent is passed where a user agent string is expected.
	ErrInvalidInput = errors.New("user agent must be a string or nil")

	// ErrInvalidDefinition is returned when a custom knowledge base cannot be
	// used for matching.
	ErrInvalidDefinition = errors.New("invalid user agent definition")

	// ErrLoadingConfig is returned when the classifier configuration cannot be
	// read from the environment.
	ErrLoadingConfig = errors.New("failed to load user agent config")
)

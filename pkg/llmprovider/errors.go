package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrGenerationFailed covers all upstream failures: network errors,
	// auth rejection, rate limiting, and malformed response bodies.
	// Distinguishing them is the provider's concern, not the caller's.
	ErrGenerationFailed = errors.New("generation failed")

	// ErrUnknownProvider indicates an unrecognized provider name in config
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrMissingAPIKey indicates the configured provider has no API key
	ErrMissingAPIKey = errors.New("missing API key")
)

// generationError wraps a provider failure so callers can match
// ErrGenerationFailed while logs keep the underlying cause.
func generationError(provider string, err error) error {
	return fmt.Errorf("%w: provider %s: %v", ErrGenerationFailed, provider, err)
}

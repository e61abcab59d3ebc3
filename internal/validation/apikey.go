// Package validation checks client configuration before any request is sent.
package validation

import (
	"errors"
	"strings"
)

var (
	// ErrAPIKeyEmpty indicates the API key is missing.
	ErrAPIKeyEmpty = errors.New("API key is required")
	// ErrAPIKeyWhitespace indicates the API key contains whitespace, usually a
	// copy/paste mistake that would corrupt the Authorization header.
	ErrAPIKeyWhitespace = errors.New("API key must not contain whitespace")
)

// Key prefixes issued by fincode.
const (
	liveSecretPrefix = "sk_live_"
	testSecretPrefix = "sk_test_"
)

// ValidateAPIKey validates the API key.
//
// Returns nil if valid, or a descriptive error if invalid.
func ValidateAPIKey(apiKey string) error {
	if apiKey == "" {
		return ErrAPIKeyEmpty
	}

	if strings.ContainsAny(apiKey, " \t\r\n") {
		return ErrAPIKeyWhitespace
	}

	return nil
}

// IsLiveKey returns true if the API key is a live (production) secret key.
func IsLiveKey(apiKey string) bool {
	return strings.HasPrefix(apiKey, liveSecretPrefix)
}

// IsTestKey returns true if the API key is a test secret key.
func IsTestKey(apiKey string) bool {
	return strings.HasPrefix(apiKey, testSecretPrefix)
}

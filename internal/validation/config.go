package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"time"
)

// apiVersionRegexp matches dated API versions such as "20211001".
var apiVersionRegexp = regexp.MustCompile(`^[0-9]{8}$`)

// FieldError represents a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
	Value   string
}

func (e *FieldError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("%s: %s (got: %s)", e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateEnvironment accepts only "test" and "live".
func ValidateEnvironment(environment string) error {
	switch environment {
	case "test", "live":
		return nil
	case "":
		return &FieldError{Field: "environment", Message: "is required"}
	default:
		return &FieldError{
			Field:   "environment",
			Message: `must be "test" or "live"`,
			Value:   truncateForDisplay(environment),
		}
	}
}

// ValidateAPIVersion checks an optional API-Version header value.
func ValidateAPIVersion(version string) error {
	if version == "" {
		return nil
	}
	if !apiVersionRegexp.MatchString(version) {
		return &FieldError{
			Field:   "api_version",
			Message: "must be a date in YYYYMMDD form",
			Value:   truncateForDisplay(version),
		}
	}
	return nil
}

// ValidateProxy parses an optional proxy URL.
func ValidateProxy(proxy string) (*url.URL, error) {
	if proxy == "" {
		return nil, nil
	}
	u, err := url.Parse(proxy)
	if err != nil {
		return nil, &FieldError{Field: "proxy", Message: fmt.Sprintf("must be a valid URL: %v", err)}
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, &FieldError{Field: "proxy", Message: "must be an absolute URL", Value: truncateForDisplay(proxy)}
	}
	return u, nil
}

// ValidateTimeout rejects negative timeouts. Zero means no timeout.
func ValidateTimeout(d time.Duration) error {
	if d < 0 {
		return &FieldError{Field: "timeout", Message: "must not be negative", Value: d.String()}
	}
	return nil
}

// truncateForDisplay truncates a string to 50 chars for error display.
func truncateForDisplay(s string) string {
	if len(s) <= 50 {
		return s
	}
	return s[:50] + "..."
}

package fincode

import (
	"errors"
	"fmt"
)

// Messages carried by TransportError.
const (
	MessageFetchFailed = "Error fetching data"
	MessageParseFailed = "Failed to parse response body"
)

const (
	messageRateLimited = "API call limit exceeded"
	messageUnknown     = "Unknown Error"
)

// Sentinel errors matched by ProviderError.Is.
var (
	// ErrRateLimited indicates the API call limit was exceeded.
	ErrRateLimited = errors.New("fincode: rate limited")

	// ErrUnauthorized indicates an authentication or authorization failure.
	ErrUnauthorized = errors.New("fincode: unauthorized")

	// ErrNotFound indicates the requested resource does not exist.
	ErrNotFound = errors.New("fincode: resource not found")
)

// ErrorKind tags the variants of Error.
type ErrorKind int

const (
	// KindProvider marks a *ProviderError.
	KindProvider ErrorKind = iota + 1
	// KindTransport marks a *TransportError.
	KindTransport
)

func (k ErrorKind) String() string {
	switch k {
	case KindProvider:
		return "provider"
	case KindTransport:
		return "transport"
	default:
		return "unknown"
	}
}

// Error is returned by every API call that fails after the request was
// built. It is implemented only by *ProviderError and *TransportError, so a
// switch on Kind is exhaustive:
//
//	var ferr fincode.Error
//	if errors.As(err, &ferr) {
//	    switch ferr.Kind() {
//	    case fincode.KindProvider:
//	        pe := ferr.(*fincode.ProviderError)
//	        ...
//	    case fincode.KindTransport:
//	        ...
//	    }
//	}
type Error interface {
	error
	Kind() ErrorKind
	Category() ErrorCategory
	sealed()
}

// APIErrorObject is one entry of the API error envelope.
type APIErrorObject struct {
	Code    string `json:"error_code"`
	Message string `json:"error_message"`
}

// Category classifies the error code. Malformed codes yield CategoryUnknown.
func (o APIErrorObject) Category() ErrorCategory {
	c, err := Classify(o.Code)
	if err != nil {
		return CategoryUnknown
	}
	return c
}

// ProviderError is returned when the API answers with a non-2xx status.
type ProviderError struct {
	// Status is the HTTP status code.
	Status int
	// Errors are the entries of the error envelope, in response order.
	Errors []APIErrorObject
	// RateLimited is set when the envelope carries a top-level message.
	RateLimited bool
}

func (*ProviderError) sealed() {}

// Kind returns KindProvider.
func (*ProviderError) Kind() ErrorKind { return KindProvider }

// Primary returns the last error of the envelope, or nil when it is empty.
func (e *ProviderError) Primary() *APIErrorObject {
	if len(e.Errors) == 0 {
		return nil
	}
	return &e.Errors[len(e.Errors)-1]
}

// Message returns the human-readable message of the failure.
func (e *ProviderError) Message() string {
	if e.RateLimited {
		return messageRateLimited
	}
	if p := e.Primary(); p != nil {
		return p.Message
	}
	return messageUnknown
}

// Category classifies the primary error code.
func (e *ProviderError) Category() ErrorCategory {
	p := e.Primary()
	if p == nil {
		return CategoryUnknown
	}
	return p.Category()
}

func (e *ProviderError) Error() string {
	if p := e.Primary(); p != nil {
		return fmt.Sprintf("fincode: %s (code=%s, status=%d)", e.Message(), p.Code, e.Status)
	}
	return fmt.Sprintf("fincode: %s (status=%d)", e.Message(), e.Status)
}

// Is implements errors.Is support for sentinel errors.
func (e *ProviderError) Is(target error) bool {
	switch target {
	case ErrRateLimited:
		return e.RateLimited
	case ErrUnauthorized:
		return e.Category() == CategoryAuth
	case ErrNotFound:
		return e.Category() == CategoryResourceNotFound
	default:
		return false
	}
}

// TransportError is returned when no usable response was received: the
// request could not be sent, the connection failed or timed out, or the
// body was not valid JSON.
type TransportError struct {
	// Message is MessageFetchFailed or MessageParseFailed.
	Message string
	// Cause is the underlying error, kept for diagnostics.
	Cause error
}

func (*TransportError) sealed() {}

// Kind returns KindTransport.
func (*TransportError) Kind() ErrorKind { return KindTransport }

// Category returns CategorySDK.
func (*TransportError) Category() ErrorCategory { return CategorySDK }

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fincode: %s: %v", e.Message, e.Cause)
	}
	return "fincode: " + e.Message
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// ConfigurationError reports caller misuse: a missing API key, an unknown
// environment or a query value without a parameter name.
type ConfigurationError struct {
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fincode: configuration error: %s: %v", e.Message, e.Err)
	}
	return "fincode: configuration error: " + e.Message
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ValidationError represents a client-side validation error.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message is the human-readable error message.
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("fincode: validation error: %s: %s", e.Field, e.Message)
}

// CategoryOf returns the category of an API call error, CategoryUnknown for
// errors that are not an Error.
func CategoryOf(err error) ErrorCategory {
	var ferr Error
	if errors.As(err, &ferr) {
		return ferr.Category()
	}
	return CategoryUnknown
}

// IsRateLimited reports whether the error indicates rate limiting.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited)
}

// IsNotFound reports whether the error indicates a missing resource.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsAuthError reports whether the error is an authentication or
// authorization error.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// IsTransportError reports whether the error is a *TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsConfigurationError reports whether the error is a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

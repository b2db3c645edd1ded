// Package apierrors provides shared error types for the Hovercode client.
package apierrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrAuthentication is returned for a missing token or an HTTP 401.
	ErrAuthentication = errors.New("authentication failed")

	// ErrValidation is returned for invalid local input or an HTTP 400.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned for an HTTP 404.
	ErrNotFound = errors.New("resource not found")

	// ErrRateLimited is returned for an HTTP 429.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServer is returned for an HTTP 5xx that reached decoding.
	ErrServer = errors.New("server error")

	// ErrNetwork is returned when the transport fails after all retries.
	ErrNetwork = errors.New("network error")

	// ErrAPI is matched by every API error regardless of kind.
	ErrAPI = errors.New("api error")

	// ErrSignatureInvalid is returned when a webhook signature does not match.
	ErrSignatureInvalid = errors.New("invalid webhook signature")
)

// Kind classifies an error.
type Kind int

const (
	// KindAPI is a non-2xx status with no more specific kind.
	KindAPI Kind = iota
	// KindAuthentication covers missing tokens and HTTP 401.
	KindAuthentication
	// KindValidation covers bad local input and HTTP 400.
	KindValidation
	// KindNotFound is HTTP 404.
	KindNotFound
	// KindRateLimit is HTTP 429.
	KindRateLimit
	// KindServer is HTTP 5xx.
	KindServer
	// KindNetwork is a transport-level failure.
	KindNetwork
)

func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindRateLimit:
		return "rate_limit"
	case KindServer:
		return "server"
	case KindNetwork:
		return "network"
	default:
		return "api"
	}
}

// Sentinel returns the sentinel error matched by errors of this kind.
func (k Kind) Sentinel() error {
	switch k {
	case KindAuthentication:
		return ErrAuthentication
	case KindValidation:
		return ErrValidation
	case KindNotFound:
		return ErrNotFound
	case KindRateLimit:
		return ErrRateLimited
	case KindServer:
		return ErrServer
	case KindNetwork:
		return ErrNetwork
	default:
		return ErrAPI
	}
}

// KindForStatus maps an HTTP status code to an error kind.
func KindForStatus(statusCode int) Kind {
	switch {
	case statusCode == http.StatusBadRequest:
		return KindValidation
	case statusCode == http.StatusUnauthorized:
		return KindAuthentication
	case statusCode == http.StatusNotFound:
		return KindNotFound
	case statusCode == http.StatusTooManyRequests:
		return KindRateLimit
	case statusCode >= 500 && statusCode <= 599:
		return KindServer
	default:
		return KindAPI
	}
}

// APIError represents an error returned by the Hovercode API or raised by
// local validation. StatusCode is zero when the error did not come from an
// HTTP response. Payload holds the decoded response body, if any.
type APIError struct {
	Kind       Kind
	Message    string
	StatusCode int
	Payload    any
}

// New creates an APIError of the given kind without a status code.
func New(kind Kind, message string, payload any) *APIError {
	return &APIError{Kind: kind, Message: message, Payload: payload}
}

// Validation creates a validation error for bad local input.
func Validation(message string, payload any) *APIError {
	return New(KindValidation, message, payload)
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error %d", e.StatusCode)
	}
	return e.Kind.Sentinel().Error()
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	if target == ErrAPI {
		return true
	}
	return target == e.Kind.Sentinel()
}

// NetworkError represents a transport-level failure after retries were
// exhausted.
type NetworkError struct {
	Message  string
	URL      string
	Attempts int
	Err      error
}

func (e *NetworkError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork || target == ErrAPI
}

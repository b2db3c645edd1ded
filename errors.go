package hovercode

import (
	"errors"
	"fmt"

	"github.com/hovercode/client-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrAuthentication is matched by a missing API token and by HTTP 401.
	ErrAuthentication = apierrors.ErrAuthentication

	// ErrValidation is matched by rejected local input and by HTTP 400.
	ErrValidation = apierrors.ErrValidation

	// ErrNotFound is matched by HTTP 404.
	ErrNotFound = apierrors.ErrNotFound

	// ErrRateLimited is matched by HTTP 429.
	ErrRateLimited = apierrors.ErrRateLimited

	// ErrServer is matched by HTTP 5xx.
	ErrServer = apierrors.ErrServer

	// ErrNetwork is matched when the transport fails after all retries.
	ErrNetwork = apierrors.ErrNetwork

	// ErrAPI is matched by every error this package returns.
	ErrAPI = apierrors.ErrAPI

	// ErrSignatureInvalid is matched when a webhook signature does not verify.
	ErrSignatureInvalid = apierrors.ErrSignatureInvalid
)

// ErrorKind classifies an APIError.
type ErrorKind = apierrors.Kind

// Error kinds.
const (
	KindAPI            = apierrors.KindAPI
	KindAuthentication = apierrors.KindAuthentication
	KindValidation     = apierrors.KindValidation
	KindNotFound       = apierrors.KindNotFound
	KindRateLimit      = apierrors.KindRateLimit
	KindServer         = apierrors.KindServer
	KindNetwork        = apierrors.KindNetwork
)

// HovercodeError is implemented by all SDK errors.
type HovercodeError interface {
	error
	HovercodeError() // marker method
}

// APIError is returned for a non-2xx response, a failed construction or a
// request rejected before it was sent.
type APIError struct {
	Kind ErrorKind
	// Message is the human-readable description, for example
	// "GET https://hovercode.com/api/v2/hovercode/x/ failed (404): Not found."
	Message string
	// StatusCode is zero when the error did not come from a response.
	StatusCode int
	// Payload is the decoded response body or the offending local value.
	Payload any
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
	return target == ErrAPI || target == e.Kind.Sentinel()
}

// HovercodeError implements the HovercodeError interface.
func (e *APIError) HovercodeError() {}

// NetworkError represents a transport failure (DNS, connection, TLS or
// timeout) on the last allowed attempt.
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

// HovercodeError implements the HovercodeError interface.
func (e *NetworkError) HovercodeError() {}

// WebhookSignatureError indicates a webhook body did not match its
// signature. It is a validation error.
type WebhookSignatureError struct {
	Message string
}

func (e *WebhookSignatureError) Error() string {
	return e.Message
}

// Is implements errors.Is for sentinel error matching.
func (e *WebhookSignatureError) Is(target error) bool {
	return target == ErrSignatureInvalid || target == ErrValidation || target == ErrAPI
}

// HovercodeError implements the HovercodeError interface.
func (e *WebhookSignatureError) HovercodeError() {}

func validationError(message string, payload any) *APIError {
	return &APIError{Kind: KindValidation, Message: message, Payload: payload}
}

// wrapError converts internal API errors to public errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			Kind:       apiErr.Kind,
			Message:    apiErr.Message,
			StatusCode: apiErr.StatusCode,
			Payload:    apiErr.Payload,
		}
	}

	var netErr *apierrors.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Message:  netErr.Message,
			URL:      netErr.URL,
			Attempts: netErr.Attempts,
			Err:      netErr.Err,
		}
	}

	return err
}

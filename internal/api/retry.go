package api

import (
	"context"
	"math"
	"net/http"
	"time"
)

// RetryConfig configures retry behavior for failed HTTP requests.
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts. Zero means a
	// single attempt.
	MaxRetries int
	// Backoff is the delay before the first retry. Each later retry doubles
	// it: Backoff * 2^attempt.
	Backoff time.Duration
	// RetryableOn determines if a status code should trigger a retry.
	RetryableOn func(statusCode int) bool

	// sleep replaces the timer in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:  DefaultMaxRetries,
		Backoff:     DefaultRetryBackoff,
		RetryableOn: IsRetryableStatus,
	}
}

// IsRetryableStatus reports whether a status code is a transient server
// failure worth retrying: 500, 502, 503 or 504.
func IsRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

// CanRetry reports whether another attempt is allowed after the given
// zero-based attempt.
func (r *RetryConfig) CanRetry(attempt int) bool {
	return attempt < r.MaxRetries
}

// ShouldRetry determines if a response with the given status should be
// retried.
func (r *RetryConfig) ShouldRetry(attempt int, statusCode int) bool {
	if !r.CanRetry(attempt) {
		return false
	}
	retryable := r.RetryableOn
	if retryable == nil {
		retryable = IsRetryableStatus
	}
	return retryable(statusCode)
}

// Delay calculates the delay before the retry that follows attempt.
func (r *RetryConfig) Delay(attempt int) time.Duration {
	if r.Backoff <= 0 {
		return 0
	}
	return time.Duration(float64(r.Backoff) * math.Pow(2, float64(attempt)))
}

// Wait blocks the calling goroutine for the backoff of attempt, or until
// ctx is done.
func (r *RetryConfig) Wait(ctx context.Context, attempt int) error {
	delay := r.Delay(attempt)
	if r.sleep != nil {
		return r.sleep(ctx, delay)
	}
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

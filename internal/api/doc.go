// Package api provides HTTP client functionality for communicating with the
// Hovercode API. It handles authentication, request serialization, response
// decoding and automatic retry logic with exponential backoff for transient
// failures.
//
// # Client Creation
//
// The package provides two ways to create a client:
//
//   - [NewClient]: Struct-based configuration for explicit, type-safe setup.
//   - [New]: Functional options pattern for flexible configuration.
//
// Both require an API token and a non-empty base URL. The token is sent as
// "Authorization: Token <token>" on every request, together with
// "Accept: application/json".
//
// # Retry Behavior
//
// A call makes up to MaxRetries+1 attempts. Transport failures (connection
// refused, DNS, TLS, per-attempt timeout) and these status codes are retried:
//
//   - 500 Internal Server Error
//   - 502 Bad Gateway
//   - 503 Service Unavailable
//   - 504 Gateway Timeout
//
// The delay before the retry that follows attempt i is RetryBackoff * 2^i
// (0.5s, 1s, 2s, ... by default). A transport failure on the last attempt
// becomes a NetworkError; a retryable status on the last attempt is decoded
// and mapped like any other error status.
//
// # Response Decoding
//
// A 204 decodes to an empty object. Other bodies are decoded as JSON, and
// returned as raw text when they are not valid JSON.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api

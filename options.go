package hovercode

import (
	"log/slog"
	"net/http"
	"time"
)

// clientConfig holds configuration for the client. Unset values fall back to
// the HOVERCODE_* environment variables and then to the defaults.
type clientConfig struct {
	baseURL      Optional[string]
	timeout      Optional[time.Duration]
	retries      Optional[int]
	retryBackoff Optional[time.Duration]
	httpClient   *http.Client
	logger       *slog.Logger

	// environment replaces the process environment when non-nil.
	environment map[string]string
	loadDotenv  bool
	dotenvPaths []string
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL. Default: https://hovercode.com/api/v2
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = Some(url)
	}
}

// WithTimeout sets the timeout of each request attempt. It takes precedence
// over HOVERCODE_TIMEOUT_SECONDS.
// Default: 10 seconds
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = Some(timeout)
	}
}

// WithRetries sets how many times a transient failure is retried. Zero
// disables retries. It takes precedence over HOVERCODE_MAX_RETRIES.
// Default: 3
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = Some(count)
	}
}

// WithRetryBackoff sets the base delay of the exponential backoff; retry i
// waits backoff * 2^i. It takes precedence over
// HOVERCODE_RETRY_BACKOFF_SECONDS.
// Default: 500 milliseconds
func WithRetryBackoff(backoff time.Duration) Option {
	return func(c *clientConfig) {
		c.retryBackoff = Some(backoff)
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets the logger that receives retry diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithEnvironment resolves HOVERCODE_* settings from vars instead of the
// process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(c *clientConfig) {
		c.environment = vars
	}
}

// WithDotenv loads the given .env files (".env" when none are given) into
// the process environment before settings are resolved. Variables that are
// already set are not overridden and missing files are ignored.
func WithDotenv(paths ...string) Option {
	return func(c *clientConfig) {
		c.loadDotenv = true
		c.dotenvPaths = paths
	}
}

package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hovercode/client-go/internal/apierrors"
)

// Default configuration values.
const (
	DefaultBaseURL      = "https://hovercode.com/api/v2"
	DefaultTimeout      = 10 * time.Second
	DefaultMaxRetries   = 3
	DefaultRetryBackoff = 500 * time.Millisecond
)

// Header names set on every request.
const (
	headerAuthorization = "Authorization"
	headerAccept        = "Accept"
	headerContentType   = "Content-Type"
	headerRequestID     = "X-Request-ID"
	authScheme          = "Token "
)

// Config holds the resolved configuration for a Client.
type Config struct {
	// BaseURL is the API root. Trailing slashes are removed.
	BaseURL string
	// APIToken is sent as "Authorization: Token <APIToken>".
	APIToken string
	// HTTPClient is reused for every request. A pooled client is created when
	// nil.
	HTTPClient *http.Client
	// Timeout bounds each attempt. Non-positive values use DefaultTimeout.
	Timeout time.Duration
	// MaxRetries is the number of retries after the first attempt. Negative
	// values are treated as zero.
	MaxRetries int
	// RetryBackoff is the base delay of the exponential backoff.
	RetryBackoff time.Duration
	// Logger receives retry diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Client is the HTTP transport for the Hovercode API. It is safe for
// concurrent use.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	timeout    time.Duration
	retry      *RetryConfig
	logger     *slog.Logger
}

// Option configures the API client.
type Option func(*Config)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Config) {
		c.BaseURL = url
	}
}

// WithRetries sets the number of retries.
func WithRetries(retries int) Option {
	return func(c *Config) {
		c.MaxRetries = retries
	}
}

// WithRetryBackoff sets the base backoff delay.
func WithRetryBackoff(backoff time.Duration) Option {
	return func(c *Config) {
		c.RetryBackoff = backoff
	}
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// New creates a client from the defaults plus opts.
func New(apiToken string, opts ...Option) (*Client, error) {
	cfg := Config{
		BaseURL:      DefaultBaseURL,
		APIToken:     apiToken,
		Timeout:      DefaultTimeout,
		MaxRetries:   DefaultMaxRetries,
		RetryBackoff: DefaultRetryBackoff,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return NewClient(cfg)
}

// NewClient creates a client from an explicit configuration.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, apierrors.Validation("base URL must be a non-empty string.", nil)
	}
	if cfg.APIToken == "" {
		return nil, apierrors.New(apierrors.KindAuthentication,
			"Missing Hovercode API token. Provide an API token or set HOVERCODE_API_TOKEN.", nil)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	retry := DefaultRetryConfig()
	retry.MaxRetries = max(cfg.MaxRetries, 0)
	retry.Backoff = max(cfg.RetryBackoff, 0)

	return &Client{
		baseURL:    baseURL,
		token:      cfg.APIToken,
		httpClient: httpClient,
		timeout:    timeout,
		retry:      retry,
		logger:     logger,
	}, nil
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// Timeout returns the default per-attempt timeout.
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// MaxRetries returns the configured retry count.
func (c *Client) MaxRetries() int {
	return c.retry.MaxRetries
}

// RetryBackoff returns the base backoff delay.
func (c *Client) RetryBackoff() time.Duration {
	return c.retry.Backoff
}

// Close releases idle pooled connections. It is safe to call more than once.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, endpoint string, p Params) (any, error) {
	return c.Do(ctx, http.MethodGet, endpoint, Request{Query: p.Query, Timeout: p.Timeout})
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, endpoint string, p Params) (any, error) {
	return c.Do(ctx, http.MethodDelete, endpoint, Request{Query: p.Query, Timeout: p.Timeout})
}

// Post sends a POST request.
func (c *Client) Post(ctx context.Context, endpoint string, req Request) (any, error) {
	return c.Do(ctx, http.MethodPost, endpoint, req)
}

// Put sends a PUT request.
func (c *Client) Put(ctx context.Context, endpoint string, req Request) (any, error) {
	return c.Do(ctx, http.MethodPut, endpoint, req)
}

// Patch sends a PATCH request.
func (c *Client) Patch(ctx context.Context, endpoint string, req Request) (any, error) {
	return c.Do(ctx, http.MethodPatch, endpoint, req)
}

// Do sends a request with retries and returns the decoded payload. Transport
// failures and 500/502/503/504 responses are retried until MaxRetries is
// reached. A retryable status on the last attempt is returned as a server
// error; a transport failure on the last attempt as a *apierrors.NetworkError.
func (c *Client) Do(ctx context.Context, method, endpoint string, req Request) (any, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	url := joinURL(c.baseURL, endpoint)
	fullURL := url
	if query := encodeQuery(req.Query); query != "" {
		fullURL += "?" + query
	}

	body, err := encodeBody(req)
	if err != nil {
		return nil, apierrors.Validation(err.Error(), nil)
	}

	timeout := c.timeout
	if req.Timeout > 0 {
		timeout = req.Timeout
	}
	requestID := uuid.NewString()
	logger := c.logger.With("method", method, "url", url, "request_id", requestID)

	for attempt := 0; ; attempt++ {
		statusCode, payload, err := c.attempt(ctx, method, fullURL, requestID, body, timeout)
		if err != nil {
			if ctx.Err() != nil || !c.retry.CanRetry(attempt) {
				return nil, networkError(method, url, attempt, err)
			}
			logger.Debug("retrying after transport error",
				"attempt", attempt, "delay", c.retry.Delay(attempt), "error", err)
			if waitErr := c.retry.Wait(ctx, attempt); waitErr != nil {
				return nil, networkError(method, url, attempt, waitErr)
			}
			continue
		}

		if c.retry.ShouldRetry(attempt, statusCode) {
			logger.Debug("retrying after retryable status",
				"attempt", attempt, "delay", c.retry.Delay(attempt), "status", statusCode)
			if waitErr := c.retry.Wait(ctx, attempt); waitErr != nil {
				return nil, networkError(method, url, attempt, waitErr)
			}
			continue
		}

		if statusCode >= 200 && statusCode < 300 {
			return payload, nil
		}
		return nil, mapHTTPError(method, url, statusCode, payload)
	}
}

func networkError(method, url string, attempt int, err error) *apierrors.NetworkError {
	return &apierrors.NetworkError{
		Message:  fmt.Sprintf("Network error calling %s %s: %v", method, url, err),
		URL:      url,
		Attempts: attempt + 1,
		Err:      err,
	}
}

// attempt performs one round-trip bounded by timeout. Failing to read the
// body counts as a transport failure.
func (c *Client) attempt(ctx context.Context, method, fullURL, requestID string, body *encodedBody, timeout time.Duration) (int, any, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(attemptCtx, method, fullURL, body.reader())
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set(headerAccept, "application/json")
	httpReq.Header.Set(headerAuthorization, authScheme+c.token)
	httpReq.Header.Set(headerRequestID, requestID)
	if body != nil {
		httpReq.Header.Set(headerContentType, body.contentType)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	payload, err := readPayload(resp)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, payload, nil
}

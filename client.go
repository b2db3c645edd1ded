package hovercode

import (
	"sync"
	"time"

	"github.com/hovercode/client-go/internal/api"
	"github.com/hovercode/client-go/internal/config"
)

// DefaultBaseURL is the Hovercode API root used when no base URL is given.
const DefaultBaseURL = api.DefaultBaseURL

// Client is the entry point of the Hovercode API. Resource clients such as
// Hovercodes share its connection pool. It is safe for concurrent use.
type Client struct {
	apiClient *api.Client

	hovercodesOnce sync.Once
	hovercodes     *Hovercodes
}

// buildAPIClient resolves every setting against the environment and creates
// the transport.
func buildAPIClient(apiToken string, cfg *clientConfig) (*api.Client, error) {
	if cfg.loadDotenv {
		if err := config.LoadDotenv(cfg.dotenvPaths...); err != nil {
			return nil, err
		}
	}

	env, err := config.LoadEnvironment(cfg.environment)
	if err != nil {
		return nil, err
	}

	return api.NewClient(api.Config{
		BaseURL:      cfg.baseURL.ValueOr(api.DefaultBaseURL),
		APIToken:     config.Token(apiToken, env),
		HTTPClient:   cfg.httpClient,
		Timeout:      config.Resolve(cfg.timeout.ptr(), env.TimeoutSeconds, config.ParseSeconds, api.DefaultTimeout),
		MaxRetries:   config.Resolve(cfg.retries.ptr(), env.MaxRetries, config.ParseRetries, api.DefaultMaxRetries),
		RetryBackoff: config.Resolve(cfg.retryBackoff.ptr(), env.RetryBackoffSeconds, config.ParseSeconds, api.DefaultRetryBackoff),
		Logger:       cfg.logger,
	})
}

// New creates a Hovercode client. An empty apiToken is read from
// HOVERCODE_API_TOKEN. It fails with ErrAuthentication when no token is
// found and with ErrValidation when the base URL is empty.
func New(apiToken string, opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiToken, cfg)
	if err != nil {
		return nil, wrapError(err)
	}

	return &Client{apiClient: apiClient}, nil
}

// Hovercodes returns the client for QR code operations.
func (c *Client) Hovercodes() *Hovercodes {
	c.hovercodesOnce.Do(func() {
		c.hovercodes = &Hovercodes{api: c.apiClient}
	})
	return c.hovercodes
}

// BaseURL returns the API base URL without trailing slashes.
func (c *Client) BaseURL() string {
	return c.apiClient.BaseURL()
}

// Timeout returns the resolved per-attempt timeout.
func (c *Client) Timeout() time.Duration {
	return c.apiClient.Timeout()
}

// MaxRetries returns the resolved retry count.
func (c *Client) MaxRetries() int {
	return c.apiClient.MaxRetries()
}

// RetryBackoff returns the resolved base backoff delay.
func (c *Client) RetryBackoff() time.Duration {
	return c.apiClient.RetryBackoff()
}

// Close releases idle connections. It is safe to call more than once.
func (c *Client) Close() error {
	return c.apiClient.Close()
}

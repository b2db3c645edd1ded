package hovercode

import (
	"context"
	"time"

	"github.com/hovercode/client-go/internal/delivery"
)

const defaultWaitTimeout = 60 * time.Second

// waitConfig holds configuration for waiting on rendered files.
type waitConfig struct {
	timeout      time.Duration
	pollInterval time.Duration
	maxBackoff   time.Duration
	predicate    func(map[string]any) bool
}

// WaitOption configures WaitForFiles.
type WaitOption func(*waitConfig)

// WithWaitTimeout bounds the whole wait.
// Default: 60 seconds
func WithWaitTimeout(timeout time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.timeout = timeout
	}
}

// WithPollInterval sets the first polling interval. Later intervals grow by
// half each time up to the maximum backoff.
// Default: 2 seconds
func WithPollInterval(interval time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.pollInterval = interval
	}
}

// WithMaxPollBackoff caps the polling interval.
// Default: 30 seconds
func WithMaxPollBackoff(maxBackoff time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.maxBackoff = maxBackoff
	}
}

// WithReadyPredicate replaces the readiness check. The default waits for
// non-empty "png" and "svg_file" URLs.
func WithReadyPredicate(fn func(map[string]any) bool) WaitOption {
	return func(c *waitConfig) {
		c.predicate = fn
	}
}

// FilesReady reports whether a QR code object lists both its PNG and SVG
// file URLs.
func FilesReady(qr map[string]any) bool {
	return nonEmptyString(qr["png"]) && nonEmptyString(qr["svg_file"])
}

func nonEmptyString(v any) bool {
	s, ok := v.(string)
	return ok && s != ""
}

// WaitForFiles polls Get until the rendered PNG and SVG files of a QR code
// are available and returns the code. Codes created with GeneratePNG already
// carry them and return after a single request.
func (h *Hovercodes) WaitForFiles(ctx context.Context, id string, opts ...WaitOption) (map[string]any, error) {
	cfg := &waitConfig{
		timeout:   defaultWaitTimeout,
		predicate: FilesReady,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.timeout <= 0 {
		cfg.timeout = defaultWaitTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	poller := delivery.NewPoller(delivery.Config{
		InitialInterval: cfg.pollInterval,
		MaxBackoff:      cfg.maxBackoff,
	})
	return poller.Wait(ctx,
		func(ctx context.Context) (map[string]any, error) {
			return h.Get(ctx, id)
		},
		cfg.predicate,
	)
}

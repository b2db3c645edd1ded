package delivery

import (
	"context"
	"math/rand"
	"time"
)

const (
	PollingInitialInterval   = 2 * time.Second
	PollingMaxBackoff        = 30 * time.Second
	PollingBackoffMultiplier = 1.5
	PollingJitterFactor      = 0.3
)

// Fetcher loads the current state of a resource.
type Fetcher func(ctx context.Context) (map[string]any, error)

// Matcher reports whether a resource has reached the awaited state.
type Matcher func(map[string]any) bool

// Config holds polling parameters. Zero values use the Polling* defaults;
// a negative JitterFactor disables jitter.
type Config struct {
	InitialInterval   time.Duration
	MaxBackoff        time.Duration
	BackoffMultiplier float64
	JitterFactor      float64
}

// Poller repeatedly fetches a resource until it matches.
type Poller struct {
	cfg    Config
	random func() float64
}

// NewPoller creates a poller, filling unset fields with defaults.
func NewPoller(cfg Config) *Poller {
	if cfg.InitialInterval <= 0 {
		cfg.InitialInterval = PollingInitialInterval
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = PollingMaxBackoff
	}
	if cfg.MaxBackoff < cfg.InitialInterval {
		cfg.MaxBackoff = cfg.InitialInterval
	}
	if cfg.BackoffMultiplier < 1 {
		cfg.BackoffMultiplier = PollingBackoffMultiplier
	}
	if cfg.JitterFactor == 0 {
		cfg.JitterFactor = PollingJitterFactor
	}
	if cfg.JitterFactor < 0 {
		cfg.JitterFactor = 0
	}
	return &Poller{cfg: cfg, random: rand.Float64}
}

// Wait fetches immediately and then after each backoff interval until match
// accepts the result, fetch fails or ctx is done.
func (p *Poller) Wait(ctx context.Context, fetch Fetcher, match Matcher) (map[string]any, error) {
	interval := p.cfg.InitialInterval

	for {
		result, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if match(result) {
			return result, nil
		}

		timer := time.NewTimer(p.waitDuration(interval))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		interval = p.nextInterval(interval)
	}
}

func (p *Poller) nextInterval(interval time.Duration) time.Duration {
	next := time.Duration(float64(interval) * p.cfg.BackoffMultiplier)
	if next > p.cfg.MaxBackoff {
		next = p.cfg.MaxBackoff
	}
	return next
}

func (p *Poller) waitDuration(interval time.Duration) time.Duration {
	// Add jitter to prevent thundering herd
	jitter := time.Duration(p.random() * p.cfg.JitterFactor * float64(interval))
	return interval + jitter
}

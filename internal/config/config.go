// Package config resolves client settings from explicit values, the
// HOVERCODE_* environment variables and built-in defaults, in that order.
package config

import (
	"errors"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every environment variable name.
const Prefix = "HOVERCODE_"

// Environment variable names.
const (
	EnvAPIToken            = Prefix + "API_TOKEN"
	EnvTimeoutSeconds      = Prefix + "TIMEOUT_SECONDS"
	EnvMaxRetries          = Prefix + "MAX_RETRIES"
	EnvRetryBackoffSeconds = Prefix + "RETRY_BACKOFF_SECONDS"
)

// Environment is a raw snapshot of the HOVERCODE_* variables. Numeric values
// are kept as strings so a malformed value can fall back to a default
// instead of failing the whole parse.
type Environment struct {
	APIToken            string `env:"API_TOKEN"`
	TimeoutSeconds      string `env:"TIMEOUT_SECONDS"`
	MaxRetries          string `env:"MAX_RETRIES"`
	RetryBackoffSeconds string `env:"RETRY_BACKOFF_SECONDS"`
}

// LoadEnvironment reads the HOVERCODE_* variables. When vars is nil the
// process environment is used.
func LoadEnvironment(vars map[string]string) (Environment, error) {
	opts := env.Options{Prefix: Prefix}
	if vars != nil {
		opts.Environment = vars
	}

	var e Environment
	if err := env.ParseWithOptions(&e, opts); err != nil {
		return Environment{}, errors.Join(ErrParsingEnvironment, err)
	}
	return e, nil
}

// LoadDotenv loads .env files into the process environment without
// overriding variables that are already set. With no paths it loads ".env"
// from the working directory. Missing files are skipped.
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}

	existing := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return errors.Join(ErrLoadingDotenv, err)
	}
	return nil
}

// Resolve returns explicit when set. Otherwise raw is parsed, and def is
// used when raw is empty or parse fails.
func Resolve[T any](explicit *T, raw string, parse func(string) (T, error), def T) T {
	if explicit != nil {
		return *explicit
	}
	if strings.TrimSpace(raw) == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		return def
	}
	return v
}

// ParseSeconds parses a decimal number of seconds such as "2.5". Negative,
// NaN and infinite values are rejected.
func ParseSeconds(raw string) (time.Duration, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, ErrInvalidValue
	}
	return time.Duration(f * float64(time.Second)), nil
}

// ParseRetries parses a non-negative base-10 integer.
func ParseRetries(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, ErrInvalidValue
	}
	return n, nil
}

// Token resolves the API token. An empty explicit token falls back to the
// environment.
func Token(explicit string, e Environment) string {
	if explicit != "" {
		return explicit
	}
	return e.APIToken
}

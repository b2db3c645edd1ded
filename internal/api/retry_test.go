package api

import (
	"context"
	"testing"
	"time"
)

func TestDefaultRetryConfig(t *testing.T) {
	cfg := DefaultRetryConfig()

	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.Backoff != 500*time.Millisecond {
		t.Errorf("Backoff = %v, want 500ms", cfg.Backoff)
	}
	if cfg.RetryableOn == nil {
		t.Error("RetryableOn is nil")
	}
}

func TestRetryConfig_ShouldRetry(t *testing.T) {
	cfg := DefaultRetryConfig()

	tests := []struct {
		name       string
		attempt    int
		statusCode int
		expected   bool
	}{
		{"first attempt, retryable", 0, 503, true},
		{"second attempt, retryable", 1, 503, true},
		{"third attempt, retryable", 2, 503, true},
		{"max attempts reached", 3, 503, false},
		{"over max attempts", 4, 503, false},
		{"non-retryable status", 0, 400, false},
		{"non-retryable 401", 0, 401, false},
		{"non-retryable 404", 0, 404, false},
		{"non-retryable 429", 0, 429, false},
		{"non-retryable 408", 0, 408, false},
		{"non-retryable 501", 0, 501, false},
		{"retryable 500", 0, 500, true},
		{"retryable 502", 0, 502, true},
		{"retryable 504", 0, 504, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cfg.ShouldRetry(tt.attempt, tt.statusCode)
			if result != tt.expected {
				t.Errorf("ShouldRetry(%d, %d) = %v, want %v",
					tt.attempt, tt.statusCode, result, tt.expected)
			}
		})
	}
}

func TestRetryConfig_ZeroRetries(t *testing.T) {
	cfg := &RetryConfig{MaxRetries: 0}

	if cfg.CanRetry(0) {
		t.Error("CanRetry(0) = true, want false with MaxRetries 0")
	}
	if cfg.ShouldRetry(0, 503) {
		t.Error("ShouldRetry(0, 503) = true, want false with MaxRetries 0")
	}
}

func TestRetryConfig_Delay(t *testing.T) {
	cfg := &RetryConfig{Backoff: 500 * time.Millisecond}

	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{0, 500 * time.Millisecond},
		{1, time.Second},
		{2, 2 * time.Second},
		{3, 4 * time.Second},
	}

	for _, tt := range tests {
		t.Run("", func(t *testing.T) {
			delay := cfg.Delay(tt.attempt)
			if delay != tt.expected {
				t.Errorf("Delay(%d) = %v, want %v", tt.attempt, delay, tt.expected)
			}
		})
	}
}

func TestRetryConfig_Delay_ZeroBackoff(t *testing.T) {
	cfg := &RetryConfig{}
	if d := cfg.Delay(5); d != 0 {
		t.Errorf("Delay(5) = %v, want 0", d)
	}
}

func TestRetryConfig_Wait(t *testing.T) {
	cfg := &RetryConfig{Backoff: 10 * time.Millisecond}

	start := time.Now()
	if err := cfg.Wait(context.Background(), 0); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}

	if elapsed := time.Since(start); elapsed < 10*time.Millisecond {
		t.Errorf("Wait() returned too early: %v", elapsed)
	}
}

func TestRetryConfig_Wait_ContextCancellation(t *testing.T) {
	cfg := &RetryConfig{Backoff: 10 * time.Second}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := cfg.Wait(ctx, 0)
	elapsed := time.Since(start)

	if err != context.Canceled {
		t.Errorf("Wait() error = %v, want context.Canceled", err)
	}
	if elapsed > 2*time.Second {
		t.Errorf("Wait() took too long after cancellation: %v", elapsed)
	}
}

func TestRetryConfig_CustomRetryableOn(t *testing.T) {
	cfg := &RetryConfig{
		MaxRetries: 3,
		RetryableOn: func(statusCode int) bool {
			return statusCode == 418
		},
	}

	if !cfg.ShouldRetry(0, 418) {
		t.Error("ShouldRetry(0, 418) = false, want true")
	}
	if cfg.ShouldRetry(0, 503) {
		t.Error("ShouldRetry(0, 503) = true, want false")
	}
}

func BenchmarkRetryConfig_Delay(b *testing.B) {
	cfg := DefaultRetryConfig()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cfg.Delay(i % 5)
	}
}

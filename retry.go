package fincode

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// RetryConfig configures Retry.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts (including the first call).
	// Default: 3
	MaxAttempts int

	// BaseDelay is the initial delay before the first retry.
	// Default: 1 second
	BaseDelay time.Duration

	// MaxDelay is the maximum delay between retries.
	// Default: 30 seconds
	MaxDelay time.Duration

	// Multiplier is the factor by which the delay increases.
	// Default: 2.0
	Multiplier float64

	// JitterFactor adds randomness to delays (0.0 to 1.0).
	JitterFactor float64
}

func (c RetryConfig) withDefaults() RetryConfig {
	if c.BaseDelay == 0 {
		c.BaseDelay = 1 * time.Second
	}
	if c.MaxDelay == 0 {
		c.MaxDelay = 30 * time.Second
	}
	if c.Multiplier == 0 {
		c.Multiplier = 2.0
	}
	if c.MaxAttempts == 0 {
		c.MaxAttempts = 3
	}
	return c
}

// Retry calls op until it succeeds, fails with an error that is not
// retryable, or cfg.MaxAttempts is reached. The client never retries on its
// own; wrap only calls that are safe to repeat, e.g. reads or mutations that
// carry an IdempotencyKey.
func Retry(ctx context.Context, cfg RetryConfig, op func(context.Context) error) error {
	cfg = cfg.withDefaults()

	var lastErr error
	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("context cancelled: %w", err)
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}
		if !IsRetryable(lastErr) {
			return lastErr
		}

		if attempt < cfg.MaxAttempts-1 {
			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for retry: %w", ctx.Err())
			case <-time.After(cfg.delay(attempt)):
			}
		}
	}

	return fmt.Errorf("max retries exceeded: %w", lastErr)
}

// delay computes the delay for a given attempt with jitter.
func (c RetryConfig) delay(attempt int) time.Duration {
	d := float64(c.BaseDelay) * math.Pow(c.Multiplier, float64(attempt))
	if d > float64(c.MaxDelay) {
		d = float64(c.MaxDelay)
	}
	if c.JitterFactor > 0 {
		d += d * c.JitterFactor * (rand.Float64()*2 - 1)
	}
	return time.Duration(d)
}

// IsRetryable reports whether repeating the call may succeed: the request
// never got a response, the call limit was hit, or the API reported a system
// error.
func IsRetryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	var te *TransportError
	if errors.As(err, &te) {
		return te.Message == MessageFetchFailed
	}

	var pe *ProviderError
	if errors.As(err, &pe) {
		if pe.RateLimited || pe.Status >= 500 {
			return true
		}
		return pe.Primary() != nil && pe.Category() == CategoryUnknown
	}
	return false
}

package objectstore

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/jsamuelsen11/game-narrative-script/internal/platform/config"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

type retryPolicy struct {
	maxAttempts     int
	initialInterval time.Duration
	maxInterval     time.Duration
	multiplier      float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	return retryPolicy{
		maxAttempts:     max(1, cfg.MaxAttempts),
		initialInterval: cfg.InitialInterval,
		maxInterval:     cfg.MaxInterval,
		multiplier:      cfg.Multiplier,
	}
}

// withRetry calls fn until it succeeds, fails permanently, or the attempts
// run out, sleeping with exponential backoff and ±25% jitter in between.
// The last error is returned.
func (s *Store) withRetry(ctx context.Context, op, key string, fn func(context.Context) error) error {
	var lastErr error
	for attempt := range s.retry.maxAttempts {
		if attempt > 0 {
			if err := s.waitForRetry(ctx, op, key, attempt, lastErr); err != nil {
				return err
			}
		}

		lastErr = fn(ctx)
		if !isRetryable(lastErr) {
			return lastErr
		}
	}
	return lastErr
}

// waitForRetry logs the retry at WARN level and waits for the backoff delay
// or context cancellation.
func (s *Store) waitForRetry(ctx context.Context, op, key string, attempt int, lastErr error) error {
	delay := backoff(attempt, s.retry)

	s.logger.WarnContext(ctx, "retrying object store request",
		slog.String("operation", "objectstore."+op),
		slog.String("key", key),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", s.retry.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// backoff calculates the delay for a given retry attempt. The attempt
// parameter is 1-indexed (attempt 1 is the first retry).
func backoff(attempt int, p retryPolicy) time.Duration {
	delay := float64(p.initialInterval) * math.Pow(p.multiplier, float64(attempt-1))

	// Cap at max interval before applying jitter.
	if p.maxInterval > 0 && delay > float64(p.maxInterval) {
		delay = float64(p.maxInterval)
	}

	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)

	if delay < 0 {
		delay = 0
	}
	return time.Duration(delay)
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}

// isRetryable reports whether a failed request may succeed on a later
// attempt. Missing objects and cancellation are final.
func isRetryable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrNotFound):
		return false
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return false
	default:
		return true
	}
}

package resilient

import (
	"context"
	"fmt"
	"time"
)

// Policy configures the retry loop.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

// DefaultPolicy returns the standard retry policy: three attempts with
// waits of 2s and 4s between them.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 3,
		BaseDelay:   2 * time.Second,
	}
}

// Do runs fn until it succeeds, fails with a non-retryable error, or the
// attempt budget is spent. Between attempts it waits BaseDelay * 2^attempt.
// After the final attempt the error names the attempt count and wraps the
// last cause.
func Do[T any](ctx context.Context, policy Policy, fn func(ctx context.Context) (T, error), retryable func(error) bool) (T, error) {
	var zero T
	if policy.MaxAttempts <= 0 {
		policy = DefaultPolicy()
	}

	var lastErr error
	for attempt := 0; attempt < policy.MaxAttempts; attempt++ {
		result, err := fn(ctx)
		if err == nil {
			return result, nil
		}
		lastErr = err

		if !retryable(err) {
			return zero, err
		}
		if attempt == policy.MaxAttempts-1 {
			break
		}

		wait := policy.BaseDelay * (1 << attempt)
		fmt.Printf("Call failed (%v). Retrying in %v...\n", err, wait)
		if err := sleep(ctx, wait); err != nil {
			return zero, err
		}
	}

	return zero, fmt.Errorf("failed after %d attempts: %w", policy.MaxAttempts, lastErr)
}

// sleep waits for d or until ctx is cancelled.
func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

package resilient

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sony/gobreaker"

	"codeberg.org/snonux/bookbabel/internal/cache"
	"codeberg.org/snonux/bookbabel/internal/translate"
)

// Stats tracks API usage across a run.
type Stats struct {
	TotalCalls   int
	FailedCalls  int
	CacheEntries int
	SuccessRate  float64
}

// Caller drives one chunk translation through the cache, the circuit
// breaker and the retry loop. Execution is single-threaded and
// sequential, so the counters need no locking.
type Caller struct {
	provider translate.Provider
	store    cache.Store
	policy   Policy
	breaker  *gobreaker.CircuitBreaker

	// Gate, when set, runs after a cache miss and before the first
	// remote attempt. The pipeline installs its rate limiter here so
	// cache hits cost no rate-limit budget and no waiting.
	Gate func(ctx context.Context) error

	totalCalls  int
	failedCalls int
}

// NewCaller creates a resilient caller around a provider and a cache
// store.
func NewCaller(provider translate.Provider, store cache.Store, policy Policy) *Caller {
	if policy.MaxAttempts <= 0 {
		policy = DefaultPolicy()
	}

	// A dead backend should fail fast instead of burning the full retry
	// budget on every remaining chunk.
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "translate",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Caller{
		provider: provider,
		store:    store,
		policy:   policy,
		breaker:  breaker,
	}
}

// Call translates one chunk. A cached result is returned immediately
// with no network cost; the second return value reports whether that
// happened. On success the translation is written to the cache before
// it is returned.
func (c *Caller) Call(ctx context.Context, text, languageCode string) (string, bool, error) {
	key := cache.NewKey(languageCode, text)
	if translated, ok := c.store.Get(key); ok {
		return translated, true, nil
	}

	if c.Gate != nil {
		if err := c.Gate(ctx); err != nil {
			return "", false, err
		}
	}

	translated, err := Do(ctx, c.policy, func(ctx context.Context) (string, error) {
		c.totalCalls++
		result, err := c.breaker.Execute(func() (interface{}, error) {
			return c.provider.Translate(ctx, text, languageCode)
		})
		if err != nil {
			c.failedCalls++
			return "", err
		}
		return result.(string), nil
	}, translate.IsRetryable)
	if err != nil {
		return "", false, err
	}

	// Cache-then-return: a returned value is never left uncached. A
	// failed cache write degrades the next run, not this one.
	if err := c.store.Put(key, translated); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to cache translation: %v\n", err)
	}

	return translated, false, nil
}

// Stats returns API usage statistics for the run so far.
func (c *Caller) Stats() Stats {
	total := c.totalCalls
	if total == 0 {
		total = 1
	}
	return Stats{
		TotalCalls:   c.totalCalls,
		FailedCalls:  c.failedCalls,
		CacheEntries: c.store.Len(),
		SuccessRate:  float64(c.totalCalls-c.failedCalls) / float64(total) * 100,
	}
}

package pipeline

import (
	"context"
	"time"
)

// DefaultRequestsPerMinute matches the SEA-LION API ceiling of 10
// requests per minute.
const DefaultRequestsPerMinute = 10

// rateLimiter enforces a requests-per-minute ceiling with a sliding
// window. Only actual network requests are recorded, so runs served
// mostly from cache never wait.
type rateLimiter struct {
	requestsPerMinute int
	requests          []time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

func newRateLimiter(rpm int) *rateLimiter {
	if rpm <= 0 {
		rpm = DefaultRequestsPerMinute
	}
	return &rateLimiter{
		requestsPerMinute: rpm,
		requests:          make([]time.Time, 0, rpm),
		now:               time.Now,
		sleep:             time.Sleep,
	}
}

// wait blocks until a request slot is free, then records the request.
func (rl *rateLimiter) wait(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	now := rl.now()

	// Drop requests older than one minute
	cutoff := now.Add(-1 * time.Minute)
	i := 0
	for i < len(rl.requests) && rl.requests[i].Before(cutoff) {
		i++
	}
	rl.requests = rl.requests[i:]

	// At the ceiling: wait until the oldest request leaves the window
	if len(rl.requests) >= rl.requestsPerMinute {
		oldest := rl.requests[0]
		if waitDuration := oldest.Add(1 * time.Minute).Sub(now); waitDuration > 0 {
			rl.sleep(waitDuration)
		}
		rl.requests = rl.requests[1:]
	}

	rl.requests = append(rl.requests, rl.now())
	return ctx.Err()
}

package contentful

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	// ProactiveRate keeps uncached Delivery API calls under the 55 req/s quota.
	ProactiveRate = 50

	// HeaderRateReset is the number of seconds until the quota resets.
	HeaderRateReset = "X-Contentful-RateLimit-Reset"

	// HeaderRateRemaining is the remaining requests in the current second.
	HeaderRateRemaining = "X-Contentful-RateLimit-Second-Remaining"
)

// defaultRetryAfter is used when a 429 carries no reset hint.
var defaultRetryAfter = time.Second

// RateLimiter paces requests and tracks the reset hint returned by the API.
type RateLimiter struct {
	mu        sync.Mutex
	remaining int
	resetTime time.Time
	bucket    *rate.Limiter
	now       func() time.Time
}

// NewRateLimiter creates a limiter allowing rps requests per second.
// A non-positive rps disables proactive throttling.
func NewRateLimiter(rps float64) *RateLimiter {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &RateLimiter{
		remaining: -1,
		bucket:    rate.NewLimiter(limit, 1),
		now:       time.Now,
	}
}

// Wait blocks until it's safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	if err := r.bucket.Wait(ctx); err != nil {
		return err
	}

	r.mu.Lock()
	exhausted := r.remaining == 0 && r.now().Before(r.resetTime)
	r.mu.Unlock()

	if exhausted {
		return r.WaitForReset(ctx)
	}
	return nil
}

// UpdateFromResponse updates the limiter from response headers.
func (r *RateLimiter) UpdateFromResponse(resp *http.Response) {
	if resp == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if remaining := resp.Header.Get(HeaderRateRemaining); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			r.remaining = val
		}
	}

	if reset := resp.Header.Get(HeaderRateReset); reset != "" {
		if secs, err := strconv.Atoi(reset); err == nil && secs >= 0 {
			r.resetTime = r.now().Add(time.Duration(secs) * time.Second)
		}
	}
}

// CheckRateLimit returns a RateLimitError if resp is a 429, nil otherwise.
func (r *RateLimiter) CheckRateLimit(resp *http.Response) error {
	if resp == nil {
		return nil
	}

	r.UpdateFromResponse(resp)

	if resp.StatusCode != http.StatusTooManyRequests {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.resetTime.After(r.now()) {
		r.resetTime = r.now().Add(defaultRetryAfter)
	}
	r.remaining = 0
	return &RateLimitError{ResetAt: r.resetTime}
}

// ResetTime returns the rate limit reset time.
func (r *RateLimiter) ResetTime() time.Time {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resetTime
}

// WaitForReset waits until the rate limit resets.
func (r *RateLimiter) WaitForReset(ctx context.Context) error {
	r.mu.Lock()
	resetTime := r.resetTime
	now := r.now()
	r.mu.Unlock()

	if !now.Before(resetTime) {
		return nil
	}

	timer := time.NewTimer(resetTime.Sub(now))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		r.mu.Lock()
		r.remaining = -1
		r.mu.Unlock()
		return nil
	}
}

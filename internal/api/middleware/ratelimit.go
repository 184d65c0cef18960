package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/liutentor/tentor-backend/internal/pkg/response"
	gocache "github.com/patrickmn/go-cache"
)

// RateLimiter enforces a fixed-window request budget per client
// identity. Window counters live in an expiring cache keyed by the
// forwarded client address; the expiry of the first hit defines the
// window boundary.
type RateLimiter struct {
	counters *gocache.Cache
	limit    int64
	window   time.Duration
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		counters: gocache.New(window, 2*window),
		limit:    int64(limit),
		window:   window,
	}
}

// Handler rejects requests over budget with 429 and annotates every
// response with the draft rate-limit headers.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		count, reset := rl.take(key)

		remaining := rl.limit - count
		if remaining < 0 {
			remaining = 0
		}

		h := w.Header()
		h.Set("RateLimit-Limit", strconv.FormatInt(rl.limit, 10))
		h.Set("RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		h.Set("RateLimit-Reset", strconv.FormatInt(secondsUntil(reset), 10))

		if count > rl.limit {
			response.Error(w, http.StatusTooManyRequests, "Too many requests, please try again later.")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// take increments and returns the counter for the key's current window
// together with the window's end.
func (rl *RateLimiter) take(key string) (int64, time.Time) {
	// Add is a no-op when the window already exists; its expiry pins
	// the window start to the first request.
	_ = rl.counters.Add(key, int64(0), rl.window)

	count, err := rl.counters.IncrementInt64(key, 1)
	if err != nil {
		// The entry expired between Add and Increment; start a new window.
		rl.counters.Set(key, int64(1), rl.window)
		count = 1
	}

	_, expiry, ok := rl.counters.GetWithExpiration(key)
	if !ok {
		expiry = time.Now().Add(rl.window)
	}

	return count, expiry
}

// clientKey identifies the caller: forwarded-for, then the CDN header,
// then a shared global bucket.
func clientKey(r *http.Request) string {
	if v := r.Header.Get("X-Forwarded-For"); v != "" {
		return v
	}
	if v := r.Header.Get("CF-Connecting-IP"); v != "" {
		return v
	}
	return "global"
}

func secondsUntil(t time.Time) int64 {
	s := int64(time.Until(t).Seconds())
	if s < 0 {
		return 0
	}
	return s
}

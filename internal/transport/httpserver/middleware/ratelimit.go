package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

type windowEntry struct {
	mu       sync.Mutex
	requests []time.Time
	// removed is set once a sweep dropped the entry from the store
	removed bool
}

func (e *windowEntry) prune(cutoff time.Time) {
	kept := e.requests[:0]
	for _, t := range e.requests {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	e.requests = kept
}

// RateLimiter is a sliding-window limit per client address. It guards the
// credential endpoints against guessing.
type RateLimiter struct {
	max    int
	window time.Duration
	now    func() time.Time
	store  sync.Map

	sweepMu   sync.Mutex
	lastSweep time.Time
}

func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{max: max, window: window, now: time.Now}
}

func (rl *RateLimiter) allow(key string) (bool, time.Duration) {
	now := rl.now()
	rl.sweep(now)

	for {
		v, _ := rl.store.LoadOrStore(key, &windowEntry{})
		entry := v.(*windowEntry)

		entry.mu.Lock()
		if entry.removed {
			entry.mu.Unlock()
			continue
		}
		entry.prune(now.Add(-rl.window))
		if len(entry.requests) >= rl.max {
			wait := entry.requests[0].Add(rl.window).Sub(now)
			entry.mu.Unlock()
			return false, wait
		}
		entry.requests = append(entry.requests, now)
		entry.mu.Unlock()
		return true, 0
	}
}

// sweep drops the addresses whose window has emptied. It runs at most once
// per window.
func (rl *RateLimiter) sweep(now time.Time) {
	rl.sweepMu.Lock()
	if now.Sub(rl.lastSweep) < rl.window {
		rl.sweepMu.Unlock()
		return
	}
	rl.lastSweep = now
	rl.sweepMu.Unlock()

	cutoff := now.Add(-rl.window)
	rl.store.Range(func(key, v any) bool {
		entry := v.(*windowEntry)
		entry.mu.Lock()
		entry.prune(cutoff)
		if len(entry.requests) == 0 {
			entry.removed = true
			rl.store.Delete(key)
		}
		entry.mu.Unlock()
		return true
	})
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.max <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		ok, retryAfter := rl.allow(clientKey(r))
		if !ok {
			seconds := int(retryAfter.Seconds()) + 1
			w.Header().Set("Retry-After", strconv.Itoa(seconds))
			writeError(w, http.StatusTooManyRequests, "rate_limited", "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey relies on chi's RealIP having rewritten RemoteAddr.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/fisiovita/clinic-booking/internal/api/handlers"
)

const msgTooManyRequests = "muitas tentativas, aguarde um minuto e tente novamente"

// RateLimiter throttles requests per client IP over a sliding window.
// State is in-memory: a single-instance deployment is assumed.
type RateLimiter struct {
	mu      sync.Mutex
	hits    map[string][]time.Time
	limit   int
	window  time.Duration
	now     func() time.Time
	logger  Logger
	cleanup time.Time
}

// NewRateLimiter creates a limiter allowing limit requests per window
func NewRateLimiter(limit int, window time.Duration, logger Logger) *RateLimiter {
	return &RateLimiter{
		hits:   make(map[string][]time.Time),
		limit:  limit,
		window: window,
		now:    time.Now,
		logger: logger,
	}
}

// Middleware rejects over-limit requests with 429
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := handlers.ClientIP(r)
		if !rl.allow(ip) {
			rl.logger.Warn("%s %s - Rate limit exceeded for %s", r.Method, r.URL.Path, ip)
			handlers.RespondError(w, http.StatusTooManyRequests, msgTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	cutoff := now.Add(-rl.window)

	recent := rl.hits[ip][:0]
	for _, t := range rl.hits[ip] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= rl.limit {
		rl.hits[ip] = recent
		return false
	}

	rl.hits[ip] = append(recent, now)

	// Drop idle entries once per window to keep the map bounded
	if now.Sub(rl.cleanup) > rl.window {
		rl.cleanup = now
		for key, times := range rl.hits {
			if len(times) == 0 || !times[len(times)-1].After(cutoff) {
				delete(rl.hits, key)
			}
		}
	}

	return true
}

package controller

import (
	"maike/pkg/logger"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client IP with a token bucket per IP.
// Buckets of clients idle for longer than the idle TTL are dropped.
type RateLimiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	rate      rate.Limit
	burst     int
	idleTTL   time.Duration
	lastSweep time.Time
	now       func() time.Time

	// Deny writes the response for throttled requests. The default answers a
	// bare 429.
	Deny http.Handler
}

// NewRateLimiter creates a RateLimiter allowing rps requests per second with
// bursts of burst per client IP.
func NewRateLimiter(rps float64, burst int, idleTTL time.Duration) *RateLimiter {
	if burst <= 0 {
		burst = 1
	}

	return &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     rate.Limit(rps),
		burst:    burst,
		idleTTL:  idleTTL,
		now:      time.Now,
		Deny: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
		}),
	}
}

func (rl *RateLimiter) limiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if rl.idleTTL > 0 && now.Sub(rl.lastSweep) > rl.idleTTL {
		for k, v := range rl.visitors {
			if now.Sub(v.lastSeen) > rl.idleTTL {
				delete(rl.visitors, k)
			}
		}
		rl.lastSweep = now
	}

	v, ok := rl.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter
}

// Len returns the number of tracked clients.
func (rl *RateLimiter) Len() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	return len(rl.visitors)
}

// Handler returns the throttling middleware.
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := GetClientIP(r)
		l := rl.limiter(ip)
		if !l.AllowN(rl.now(), 1) {
			logger.Warn(r.Context(), "rate limit exceeded",
				zap.String("client_ip", ip), zap.String("path", r.URL.Path))

			if rl.rate > 0 {
				retry := max(1, int(1/float64(rl.rate)))
				w.Header().Set("Retry-After", strconv.Itoa(retry))
			}
			rl.Deny.ServeHTTP(w, r)

			return
		}

		next.ServeHTTP(w, r)
	})
}

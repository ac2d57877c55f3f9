package httpx

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter throttles requests per client address.
type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	rate      rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time

	// trustProxy makes the first X-Forwarded-For hop the client key. Only
	// enable it behind a proxy that overwrites the header.
	trustProxy bool
}

func NewRateLimiter(rps float64, burst int, trustProxy bool) *RateLimiter {
	return &RateLimiter{
		clients:    make(map[string]*clientLimiter),
		rate:       rate.Limit(rps),
		burst:      burst,
		idle:       5 * time.Minute,
		lastSweep:  time.Now(),
		trustProxy: trustProxy,
	}
}

func (rl *RateLimiter) limiterFor(key string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	// Idle clients are swept at most once per idle period.
	if now.Sub(rl.lastSweep) > rl.idle {
		for k, c := range rl.clients {
			if now.Sub(c.lastSeen) > rl.idle {
				delete(rl.clients, k)
			}
		}
		rl.lastSweep = now
	}

	c, ok := rl.clients[key]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.clients[key] = c
	}
	c.lastSeen = now
	return c.limiter
}

func (rl *RateLimiter) clientKey(r *http.Request) string {
	if rl.trustProxy {
		first, _, _ := strings.Cut(r.Header.Get("X-Forwarded-For"), ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.limiterFor(rl.clientKey(r), time.Now()).Allow() {
			JSONError(w, r, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Too many requests", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/hongminglow/megasena-be/internal/http/respond"
)

// RateLimiter hands out one token bucket per client IP.
type RateLimiter struct {
	mu             sync.Mutex
	limiters       map[string]*visitor
	limit          rate.Limit
	burst          int
	idleTTL        time.Duration
	trustForwarded bool
	now            func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows perSecond requests per IP with the given burst.
// Buckets idle for longer than ten minutes are dropped on the next request.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*visitor),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		idleTTL:  10 * time.Minute,
		now:      time.Now,
	}
}

// TrustForwardedHeaders keys buckets on X-Forwarded-For / X-Real-Ip instead
// of the peer address. Enable it only behind a proxy that overwrites them.
func (l *RateLimiter) TrustForwardedHeaders(trust bool) *RateLimiter {
	l.trustForwarded = trust
	return l
}

// Allow reports whether the client at ip may make another request now.
func (l *RateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for key, v := range l.limiters {
		if now.Sub(v.lastSeen) > l.idleTTL {
			delete(l.limiters, key)
		}
	}

	v, ok := l.limiters[ip]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[ip] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// Middleware returns 429 once a client exhausts its bucket.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := remoteIP(r)
		if l.trustForwarded {
			key = clientIP(r)
		}
		if !l.Allow(key) {
			respond.Error(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/heartmarshall/mynotes-backend/internal/config"
)

// RateLimiter implements per-client token bucket rate limiting. Buckets
// live in a bounded LRU cache, so the memory footprint stays fixed and
// idle clients age out through eviction instead of a cleanup goroutine.
type RateLimiter struct {
	buckets *lru.Cache[string, *bucket]
	mu      sync.Mutex

	maxTokens  float64
	refillRate float64 // tokens per second
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

// NewRateLimiter creates a rate limiter sized per the config.
func NewRateLimiter(cfg config.RateLimitConfig) (*RateLimiter, error) {
	cache, err := lru.New[string, *bucket](cfg.MaxClients)
	if err != nil {
		return nil, fmt.Errorf("create bucket cache: %w", err)
	}
	return &RateLimiter{
		buckets:    cache,
		maxTokens:  float64(cfg.RequestsPerMinute),
		refillRate: float64(cfg.RequestsPerMinute) / 60.0,
	}, nil
}

// Limit returns middleware that rate-limits requests per client IP.
func (rl *RateLimiter) Limit() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b := rl.getBucket(clientKey(r))
			if !b.allow(rl.maxTokens, rl.refillRate) {
				retryAfter := 60.0 / rl.maxTokens
				w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter)+1))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) getBucket(key string) *bucket {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if b, ok := rl.buckets.Get(key); ok {
		return b
	}
	b := &bucket{tokens: rl.maxTokens, lastRefill: time.Now()}
	rl.buckets.Add(key, b)
	return b
}

func (b *bucket) allow(maxTokens, refillRate float64) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens += elapsed * refillRate
	if b.tokens > maxTokens {
		b.tokens = maxTokens
	}
	b.lastRefill = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// clientKey extracts the client IP, ignoring the ephemeral port so one
// client cannot dodge the limiter by reconnecting.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

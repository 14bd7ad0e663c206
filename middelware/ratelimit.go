package middelware

import (
	"net/http"
	"sync"
	"time"

	"kotseai-backend/models"

	"github.com/gin-gonic/gin"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
)

type clientBucket struct {
	tokens     int
	lastRefill time.Time
}

// RateLimiter is a per-IP token bucket refilled once per interval. The
// generation endpoints sit in front of a metered LLM, so they get a much
// tighter budget than a normal CRUD API would.
type RateLimiter struct {
	mu          sync.Mutex
	capacity    int
	refillDur   time.Duration
	clients     map[string]*clientBucket
	stopCleanup chan struct{}
}

// NewRateLimiter creates a limiter allowing capacity requests per refill window
func NewRateLimiter(capacity int, refillDur time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:    capacity,
		refillDur:   refillDur,
		clients:     make(map[string]*clientBucket),
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for ip, bucket := range r.clients {
		if now.Sub(bucket.lastRefill) > bucketCleanupThreshold {
			delete(r.clients, ip)
		}
	}
}

// Stop terminates the background cleanup loop
func (r *RateLimiter) Stop() {
	close(r.stopCleanup)
}

// Allow reports whether the caller identified by ip may proceed
func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	bucket, exists := r.clients[ip]

	if !exists {
		r.clients[ip] = &clientBucket{
			tokens:     r.capacity - 1,
			lastRefill: now,
		}
		return true
	}

	if now.Sub(bucket.lastRefill) >= r.refillDur {
		bucket.tokens = r.capacity
		bucket.lastRefill = now
	}

	if bucket.tokens <= 0 {
		return false
	}

	bucket.tokens--
	return true
}

// RateLimit returns a gin.HandlerFunc enforcing the limiter per client IP
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.ClientIP()) {
			c.JSON(http.StatusTooManyRequests, models.APIResponse{
				Status:  "error",
				Code:    http.StatusTooManyRequests,
				Message: "Rate limit exceeded, try again later",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// NewRateLimiterFromConfig builds the limiter from the configured
// requests-per-minute budget
func NewRateLimiterFromConfig(cfg *models.Config) *RateLimiter {
	capacity := cfg.RateLimitRequestsPerMinute
	if capacity <= 0 {
		capacity = 30
	}
	return NewRateLimiter(capacity, time.Minute)
}

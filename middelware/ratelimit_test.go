package middelware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllow(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute)
	defer limiter.Stop()

	assert.True(t, limiter.Allow("203.0.113.1"))
	assert.True(t, limiter.Allow("203.0.113.1"))
	assert.True(t, limiter.Allow("203.0.113.1"))
	assert.False(t, limiter.Allow("203.0.113.1"))

	// Other clients have their own bucket.
	assert.True(t, limiter.Allow("203.0.113.2"))
}

func TestRateLimiterRefill(t *testing.T) {
	limiter := NewRateLimiter(1, 10*time.Millisecond)
	defer limiter.Stop()

	assert.True(t, limiter.Allow("203.0.113.1"))
	assert.False(t, limiter.Allow("203.0.113.1"))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, limiter.Allow("203.0.113.1"))
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := NewRateLimiter(2, time.Minute)
	defer limiter.Stop()

	r := gin.New()
	r.POST("/generate", RateLimit(limiter), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

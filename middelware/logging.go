package middelware

import (
	"time"

	"kotseai-backend/utils/logger"

	"github.com/gin-gonic/gin"
)

// LoggingMiddleware provides request logging
type LoggingMiddleware struct {
	logger logger.Logger
}

// NewLoggingMiddleware creates a new logging middleware
func NewLoggingMiddleware(log logger.Logger) *LoggingMiddleware {
	return &LoggingMiddleware{
		logger: log,
	}
}

// RequestLogger logs each completed request with latency and caller identity
func (m *LoggingMiddleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		if path == "/health" {
			return
		}

		latency := time.Since(start)
		userID, _ := c.Get("user_id")

		fields := map[string]interface{}{
			"method":  c.Request.Method,
			"path":    path,
			"query":   raw,
			"status":  c.Writer.Status(),
			"latency": latency,
			"ip":      c.ClientIP(),
		}
		if userID != nil {
			fields["user_id"] = userID
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		switch {
		case c.Writer.Status() >= 500:
			m.logger.Errorf("HTTP request completed with error: %+v", fields)
		case c.Writer.Status() >= 400:
			m.logger.Warnf("HTTP request completed with client error: %+v", fields)
		default:
			m.logger.Infof("HTTP request completed: %+v", fields)
		}
	}
}

// Recovery middleware with logging
func (m *LoggingMiddleware) Recovery() gin.HandlerFunc {
	return gin.RecoveryWithWriter(gin.DefaultErrorWriter, func(c *gin.Context, recovered interface{}) {
		m.logger.Errorf("Panic recovered: %v", recovered)

		c.JSON(500, gin.H{
			"error":   "Internal Server Error",
			"message": "An unexpected error occurred",
		})
	})
}

package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jamstream/server/pkg/logger"
)

// Logging middleware logs HTTP requests with structured information.
func Logging(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		statusCode := c.Writer.Status()

		fields := []logger.Field{
			logger.String("request_id", GetRequestID(c)),
			logger.String("method", c.Request.Method),
			logger.String("path", path),
			logger.String("query", query),
			logger.Int("status", statusCode),
			logger.String("ip", c.ClientIP()),
			logger.Duration("latency_ms", time.Since(start)),
		}

		if username, exists := c.Get("username"); exists {
			if name, ok := username.(string); ok {
				fields = append(fields, logger.String("username", name))
			}
		}

		switch {
		case statusCode >= 500:
			if len(c.Errors) > 0 {
				fields = append(fields, logger.String("error", c.Errors.String()))
			}
			log.Error("HTTP request failed with server error", fields...)
		case statusCode >= 400:
			log.Warn("HTTP request failed with client error", fields...)
		default:
			log.Info("HTTP request completed", fields...)
		}
	}
}

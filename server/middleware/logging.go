package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stratakit/strata/logger"
)

// RequestLogger returns a Gin middleware that logs every request with
// method, path, status, and latency. Health-check paths are silently skipped.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isHealthEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path = path + "?" + q
		}

		fields := logger.Fields(
			"method", c.Request.Method,
			"path", path,
			"status", status,
			logger.FieldDuration, latency.Milliseconds(),
		)
		if id := c.GetString(ContextKeyRequestID); id != "" {
			fields[logger.FieldRequestID] = id
		}

		switch {
		case status >= 500:
			logger.Error("Request completed", fields)
		case status >= 400:
			logger.Warn("Request completed", fields)
		default:
			logger.Debug("Request completed", fields)
		}
	}
}

func isHealthEndpoint(path string) bool {
	switch path {
	case "/health", "/ready", "/version":
		return true
	}
	return false
}

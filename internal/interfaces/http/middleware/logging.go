package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/peptilab/peptigraph/internal/infrastructure/monitoring/logging"
)

// RequestLogging logs one line per finished request.  5xx responses log at
// error level, 4xx at warn, everything else at info.  Paths in skip are not
// logged (health checks, scrape endpoints).
func RequestLogging(logger logging.Logger, skip ...string) gin.HandlerFunc {
	skipped := make(map[string]bool, len(skip))
	for _, p := range skip {
		skipped[p] = true
	}
	logger = logger.Named("http")

	return func(c *gin.Context) {
		if skipped[c.FullPath()] || skipped[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []logging.Field{
			logging.String("method", c.Request.Method),
			logging.String("path", c.Request.URL.Path),
			logging.Int("status", status),
			logging.Duration("elapsed", time.Since(start)),
			logging.String("request_id", GetRequestID(c)),
		}
		switch {
		case status >= 500:
			logger.Error("request failed", fields...)
		case status >= 400:
			logger.Warn("request rejected", fields...)
		default:
			logger.Info("request served", fields...)
		}
	}
}

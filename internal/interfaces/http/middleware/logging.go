package middleware

import (
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"devfolio/internal/shared/logger"
)

// Logger emits one structured line per request. Server errors log at error
// level and client errors at warn, so approval-link mistakes (bad secret,
// stale guest id) stand out in the log without paging anyone.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + redactQuery(raw)
		}

		c.Next()

		status := c.Writer.Status()
		fields := []interface{}{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if requestID := c.GetHeader("X-Request-ID"); requestID != "" {
			fields = append(fields, "request_id", requestID)
		}

		switch {
		case status >= 500:
			log.Errorw("request failed", fields...)
		case status >= 400:
			log.Warnw("request rejected", fields...)
		default:
			log.Debugw("request served", fields...)
		}
	}
}

// redactQuery masks the admin secret that approval and listing links carry
// as a query parameter.
func redactQuery(raw string) string {
	values, err := url.ParseQuery(raw)
	if err != nil {
		return raw
	}
	if values.Has("secret") {
		values.Set("secret", "[REDACTED]")
	}
	return values.Encode()
}

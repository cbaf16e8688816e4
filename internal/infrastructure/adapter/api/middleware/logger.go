package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
)

// Logger emits one entry per request. The level follows the status class
// so 5xx responses surface as errors.
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		statusCode := c.Writer.Status()
		fields := map[string]any{
			"method":     method,
			"path":       path,
			"route":      c.FullPath(),
			"status":     statusCode,
			"latency_ms": latency.Milliseconds(),
			"ip":         c.ClientIP(),
			"request_id": c.GetString(RequestIDKey),
			"user_agent": c.Request.UserAgent(),
		}
		if principal, ok := PrincipalFrom(c); ok {
			fields["user_id"] = principal.UserID
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		switch {
		case statusCode >= 500:
			logger.Error("Request processed", fields)
		case statusCode >= 400:
			logger.Warn("Request processed", fields)
		default:
			logger.Info("Request processed", fields)
		}
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
)

// Request id header and gin context key
const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

const maxRequestIDLength = 128

// RequestID reuses a caller supplied X-Request-ID or generates a UUID. The id
// is echoed in the response and carried in the request context so that
// database logs can be correlated with the request.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Request = c.Request.WithContext(coreport.WithRequestID(c.Request.Context(), id))

		c.Next()
	}
}

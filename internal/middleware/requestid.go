package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request identifier in both directions.
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the gin.Context key holding the request identifier.
	RequestIDKey = "requestID"
)

// RequestID reuses an inbound X-Request-ID or generates a UUID, stores it in
// the context and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

// GetRequestID returns the request identifier, or "" outside RequestID.
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

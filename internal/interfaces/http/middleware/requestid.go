// Package middleware provides the gin middleware stack: request IDs,
// structured request logging, and prometheus instrumentation.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the header carrying the request identifier, inbound
// and outbound.
const HeaderRequestID = "X-Request-ID"

// contextKeyRequestID is the gin context key under which the ID is stored.
const contextKeyRequestID = "request_id"

// RequestID assigns each request a unique identifier, honoring one supplied
// by the client, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(contextKeyRequestID, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// GetRequestID returns the request's identifier, or "" outside the
// middleware chain.
func GetRequestID(c *gin.Context) string {
	return c.GetString(contextKeyRequestID)
}

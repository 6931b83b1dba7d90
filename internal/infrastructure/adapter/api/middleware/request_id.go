package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/point-ledger/internal/infrastructure/adapter/api/dto"
)

// RequestIDHeader carries the request ID in both directions
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID reuses the caller's X-Request-ID or assigns a new UUID,
// stores it on the context and echoes it in the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// RequestIDFromContext returns the request ID assigned by RequestID
func RequestIDFromContext(c *gin.Context) string {
	if id := c.GetString(requestIDKey); id != "" {
		return id
	}
	return c.GetHeader(RequestIDHeader)
}

// WriteError answers with status and the standard error body tagged with the request ID
func WriteError(c *gin.Context, status, code int, message string) {
	c.JSON(status, dto.NewErrorResponse(code, message, RequestIDFromContext(c)))
}

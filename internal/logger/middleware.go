package logger

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's X-Request-ID or mints one, and stores it in the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" {
			reqID = uuid.NewString()
		}

		c.Request = c.Request.WithContext(WithRequestID(c.Request.Context(), reqID))
		c.Writer.Header().Set(RequestIDHeader, reqID)

		c.Next()
	}
}

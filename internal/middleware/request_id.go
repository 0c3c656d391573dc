package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gcal-relay/pkg/log"
)

const headerRequestID = "X-Request-ID"

// RequestID tags the request context with an id that the logger attaches to every line.
// An incoming X-Request-ID is kept.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(headerRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(headerRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

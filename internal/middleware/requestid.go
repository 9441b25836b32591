package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id in both directions.
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the context key (Fiber locals, Gin keys) holding the request id.
	RequestIDKey = "requestid"
)

// FiberRequestID assigns every request an id, reusing an incoming X-Request-ID.
func FiberRequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Header:     RequestIDHeader,
		ContextKey: RequestIDKey,
		Generator:  uuid.NewString,
	})
}

// GinRequestID assigns every request an id, reusing an incoming X-Request-ID.
func GinRequestID() gin.HandlerFunc {
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

// FiberRequestIDValue returns the id stored by FiberRequestID.
func FiberRequestIDValue(c *fiber.Ctx) string {
	id, _ := c.Locals(RequestIDKey).(string)
	return id
}

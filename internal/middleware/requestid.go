package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/AnotherWeak/prova/internal/pkg/idgen"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

var requestIDGen idgen.Generator = idgen.NewUUID("")

// RequestIDMiddleware honors an inbound X-Request-ID or assigns a fresh one,
// and echoes it on the response
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = requestIDGen.Generate()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// RequestID returns the request ID assigned to this request, if any
func RequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

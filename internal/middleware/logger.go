// Package middleware provides the gin middleware stack for the HTTP server
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs one line per request with method, path, status, and latency
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		args := []any{
			"status", status,
			"method", c.Request.Method,
			"path", path,
			"query", query,
			"ip", c.ClientIP(),
			"latency", latency.String(),
			"request_id", RequestID(c),
		}

		ctx := c.Request.Context()
		switch {
		case len(c.Errors) > 0:
			for _, e := range c.Errors.Errors() {
				slog.ErrorContext(ctx, e, args...)
			}
		case status >= 500:
			slog.ErrorContext(ctx, "http request", args...)
		case status >= 400:
			slog.WarnContext(ctx, "http request", args...)
		default:
			slog.InfoContext(ctx, "http request", args...)
		}
	}
}

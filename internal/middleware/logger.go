package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one structured log line per request. Server errors log at
// error level and client errors at warn.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= http.StatusInternalServerError:
			level = slog.LevelError
		case status >= http.StatusBadRequest:
			level = slog.LevelWarn
		}

		slog.Log(c.Request.Context(), level, "http request",
			"method", c.Request.Method,
			"path", routePath(c),
			"status", status,
			"latency", time.Since(start),
			"request_id", GetRequestID(c),
			"client_ip", c.ClientIP(),
			"user_id", GetUserID(c),
		)
	}
}

// routePath is the matched route template, so ids never reach labels.
func routePath(c *gin.Context) string {
	if path := c.FullPath(); path != "" {
		return path
	}
	return "<no-route>"
}

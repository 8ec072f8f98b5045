package middleware

import (
	"strconv"
	"time"

	"ceslar/internal/telemetry"

	"github.com/gin-gonic/gin"
)

// Metrics records the request count and latency of every request, labelled
// by route template. Register it after RequestID so aborted requests are
// still counted with their final status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := routePath(c)
		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		telemetry.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		telemetry.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}

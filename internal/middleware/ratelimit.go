package middleware

import (
	"log/slog"
	"net/http"
	"strconv"

	"ceslar/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
)

// RateLimit returns a middleware allowing perMinute requests per client
// under scope. Clients are keyed by user id when authenticated and by IP
// otherwise. A non-positive perMinute disables the limit. When Redis is
// unreachable requests are let through.
func RateLimit(limiter *redis_rate.Limiter, scope string, perMinute int) gin.HandlerFunc {
	if limiter == nil || perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limit := redis_rate.PerMinute(perMinute)

	return func(c *gin.Context) {
		res, err := limiter.Allow(c.Request.Context(), rateLimitKey(c, scope), limit)
		if err != nil {
			slog.WarnContext(c.Request.Context(), "rate limiter unavailable", "scope", scope, "error", err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(perMinute))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

		if res.Allowed == 0 {
			retryAfter := int(res.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			response.Abort(c, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		c.Next()
	}
}

func rateLimitKey(c *gin.Context, scope string) string {
	if uid := GetUserID(c); uid != "" {
		return "ratelimit:" + scope + ":user:" + uid
	}
	return "ratelimit:" + scope + ":ip:" + c.ClientIP()
}

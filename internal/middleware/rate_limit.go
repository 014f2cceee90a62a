package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"maxitask/pkg/response"
)

// RateLimit caps request throughput on a route group with a shared token
// bucket. The app is single-user, so one bucket covers everyone.
func (m Middleware) RateLimit(perMin int) gin.HandlerFunc {
	if perMin <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit hit on %s", c.FullPath())
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

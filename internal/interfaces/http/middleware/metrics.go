package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// HTTPObserver records request latency per route.
type HTTPObserver interface {
	ObserveHTTPRequest(method, endpoint string, status int, elapsed time.Duration)
}

// Metrics labels requests by route template so path ids do not explode the
// series count. Unmatched routes share one label.
func Metrics(observer HTTPObserver) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		observer.ObserveHTTPRequest(c.Request.Method, endpoint, c.Writer.Status(), time.Since(start))
	}
}

package middleware

import (
	"time"

	"github.com/Praful-John2409/BookTable/internal/metrics"
	"github.com/wb-go/wbf/ginext"
)

// Metrics records request counts and latency. The route template is used as
// the path label to keep cardinality bounded.
func Metrics() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}

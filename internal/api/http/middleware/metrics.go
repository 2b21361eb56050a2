package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/timeledger/project-billing-api/internal/observability"
)

// MetricsMiddleware records request counts and latency per route template.
// Unmatched routes are grouped under "unmatched".
func MetricsMiddleware(metrics *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RecordHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}

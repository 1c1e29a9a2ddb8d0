package middleware

import (
	"strconv"
	"time"

	"github.com/Amezzyx/backend-riders-forge/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records a prometheus counter and duration histogram per request,
// labelled by method, route template and status.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		method := c.Request.Method
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration)
	}
}

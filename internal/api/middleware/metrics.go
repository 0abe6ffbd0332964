package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/magscene/magsav-api/internal/metrics"
)

// Metrics records the count and latency of every request by route template,
// so /api/vehicules/1 and /api/vehicules/2 share one series.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		path := ctx.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RecordHTTPRequest(ctx.Request.Method, path, ctx.Writer.Status(), time.Since(start))
	}
}

package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hbagde424/ElectionAT-sub001/internal/observability"
)

// RecordMetrics feeds request counts, latency and in-flight gauges. Scrapes of
// /metrics itself are not counted.
func RecordMetrics(m *observability.Metrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		route := routeOf(c)
		if route == "/metrics" {
			c.Next()
			return
		}
		m.ApiInflightInc()
		start := time.Now()
		defer func() {
			m.ApiInflightDec()
			m.ObserveAPI(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
		}()
		c.Next()
	}
}

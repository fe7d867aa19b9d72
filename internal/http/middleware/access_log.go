package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hbagde424/ElectionAT-sub001/internal/platform/ctxutil"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

// quietRoutes are polled by orchestrators and scrapers; successful hits log at debug.
var quietRoutes = map[string]bool{"/healthcheck": true, "/metrics": true}

// AccessLog writes one entry per request once the handler chain has finished.
func AccessLog(log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		return func(c *gin.Context) { c.Next() }
	}
	log = log.With("component", "http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := routeOf(c)
		status := c.Writer.Status()
		kv := []interface{}{
			"method", c.Request.Method,
			"route", route,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"bytes", c.Writer.Size(),
			"client_ip", c.ClientIP(),
		}
		kv = append(kv, ctxutil.LogFields(c.Request.Context())...)
		if rd := ctxutil.GetRequestData(c.Request.Context()); rd != nil && rd.UserID != uuid.Nil {
			kv = append(kv, "user_id", rd.UserID.String(), "role", rd.Role)
		}
		if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
			kv = append(kv, "errors", errs.String())
		}

		switch {
		case status >= 500:
			log.Error("request failed", kv...)
		case status >= 400:
			log.Warn("request rejected", kv...)
		case quietRoutes[route]:
			log.Debug("request served", kv...)
		default:
			log.Info("request served", kv...)
		}
	}
}

// routeOf returns the matched route template so ids stay out of labels and logs.
func routeOf(c *gin.Context) string {
	if r := c.FullPath(); r != "" {
		return r
	}
	return "unmatched"
}

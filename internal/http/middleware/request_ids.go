package middleware

import (
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/hbagde424/ElectionAT-sub001/internal/platform/ctxutil"
)

const (
	HeaderRequestID = "X-Request-Id"
	HeaderTraceID   = "X-Trace-Id"
)

// Inbound ids end up in logs, so only short opaque tokens are echoed back.
var idPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]{8,128}$`)

// RequestIDs resolves the request and trace ids, exposes them as response headers
// and stores them on the request context for logging. The active span's trace id
// wins over a client-supplied one.
func RequestIDs() gin.HandlerFunc {
	return func(c *gin.Context) {
		ids := ctxutil.TraceData{
			RequestID: inboundID(c, HeaderRequestID),
			TraceID:   inboundID(c, HeaderTraceID),
		}
		span := trace.SpanFromContext(c.Request.Context())
		if sc := span.SpanContext(); sc.HasTraceID() {
			ids.TraceID = sc.TraceID().String()
		}
		if ids.RequestID == "" {
			ids.RequestID = uuid.NewString()
		}
		if ids.TraceID == "" {
			ids.TraceID = ids.RequestID
		}
		span.SetAttributes(attribute.String("http.request_id", ids.RequestID))

		c.Request = c.Request.WithContext(ctxutil.WithTraceData(c.Request.Context(), &ids))
		c.Header(HeaderRequestID, ids.RequestID)
		c.Header(HeaderTraceID, ids.TraceID)
		c.Next()
	}
}

func inboundID(c *gin.Context, header string) string {
	v := c.GetHeader(header)
	if !idPattern.MatchString(v) {
		return ""
	}
	return v
}

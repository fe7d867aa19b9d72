package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hbagde424/ElectionAT-sub001/internal/platform/ctxutil"
)

func serveIDs(t *testing.T, header http.Header) (*httptest.ResponseRecorder, *ctxutil.TraceData) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	var seen *ctxutil.TraceData
	r := gin.New()
	r.Use(RequestIDs())
	r.GET("/api/states", func(c *gin.Context) {
		seen = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/api/states", nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec, seen
}

func TestRequestIDsGeneratesWhenMissing(t *testing.T) {
	rec, seen := serveIDs(t, nil)
	if seen == nil || seen.RequestID == "" {
		t.Fatalf("trace data not attached: %+v", seen)
	}
	if got := rec.Header().Get(HeaderRequestID); got != seen.RequestID {
		t.Fatalf("header %q, context %q", got, seen.RequestID)
	}
	if seen.TraceID != seen.RequestID {
		t.Fatalf("without a span the trace id should fall back to the request id, got %q", seen.TraceID)
	}
}

func TestRequestIDsEchoesWellFormedIDs(t *testing.T) {
	h := http.Header{}
	h.Set(HeaderRequestID, "req-0001-abcdef")
	h.Set(HeaderTraceID, "4bf92f3577b34da6a3ce929d0e0e4736")
	rec, seen := serveIDs(t, h)
	if seen.RequestID != "req-0001-abcdef" || seen.TraceID != "4bf92f3577b34da6a3ce929d0e0e4736" {
		t.Fatalf("unexpected ids %+v", seen)
	}
	if rec.Header().Get(HeaderTraceID) != seen.TraceID {
		t.Fatalf("trace header not echoed")
	}
}

func TestRequestIDsDropsSuspiciousIDs(t *testing.T) {
	h := http.Header{}
	h.Set(HeaderRequestID, "bad id\nwith newline")
	h.Set(HeaderTraceID, strings.Repeat("a", 200))
	_, seen := serveIDs(t, h)
	if seen.RequestID == "bad id\nwith newline" || len(seen.TraceID) == 200 {
		t.Fatalf("inbound ids should have been replaced: %+v", seen)
	}
}

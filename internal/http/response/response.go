// Package response writes the JSON envelopes every endpoint shares:
// {success, data} for single records, {success, count, total, page, limit, pages, data}
// for lists and {success:false, message} for failures.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/query"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/apierr"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/ctxutil"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type Envelope struct {
	Success bool   `json:"success"`
	Count   *int   `json:"count,omitempty"`
	Total   *int64 `json:"total,omitempty"`
	Page    *int   `json:"page,omitempty"`
	// Limit is the page size actually applied after capping.
	Limit   *int   `json:"limit,omitempty"`
	Pages   *int   `json:"pages,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func RespondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{Success: true, Data: data})
}

func RespondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, Envelope{Success: true, Data: data})
}

// RespondList writes a page of rows. data is always an array, never null.
func RespondList[T any](c *gin.Context, rows []*T, page query.Page) {
	if rows == nil {
		rows = []*T{}
	}
	count := len(rows)
	c.JSON(http.StatusOK, Envelope{
		Success: true,
		Count:   &count,
		Total:   &page.Total,
		Page:    &page.Page,
		Limit:   &page.Limit,
		Pages:   &page.Pages,
		Data:    rows,
	})
}

// RespondItems writes an unpaginated array with its count.
func RespondItems[T any](c *gin.Context, rows []*T) {
	if rows == nil {
		rows = []*T{}
	}
	count := len(rows)
	c.JSON(http.StatusOK, Envelope{Success: true, Count: &count, Data: rows})
}

// RespondError maps err to its status. Server errors are logged with the
// request's trace ids and reach the client as a generic message.
func RespondError(c *gin.Context, log *logger.Logger, err error) {
	apiErr := apierr.As(err)
	if apiErr.Status >= http.StatusInternalServerError && log != nil {
		fields := append([]interface{}{"error", err, "path", c.Request.URL.Path},
			ctxutil.LogFields(c.Request.Context())...)
		log.Error("request failed", fields...)
	}
	c.JSON(apiErr.Status, ErrorEnvelope{Success: false, Message: apiErr.Message})
}

// Abort is RespondError for middleware.
func Abort(c *gin.Context, err error) {
	apiErr := apierr.As(err)
	c.AbortWithStatusJSON(apiErr.Status, ErrorEnvelope{Success: false, Message: apiErr.Message})
}

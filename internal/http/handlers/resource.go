package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/query"
	"github.com/hbagde424/ElectionAT-sub001/internal/http/response"
	"github.com/hbagde424/ElectionAT-sub001/internal/pkg/ref"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/apierr"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
	"github.com/hbagde424/ElectionAT-sub001/internal/services"
)

// Routes is the handler set mounted for every REST resource.
type Routes interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// ResourceHandler serves list/get/create/update/delete for one entity.
type ResourceHandler[T any, In any] struct {
	name string
	log  *logger.Logger
	svc  services.Resource[T, In]
}

func NewResourceHandler[T any, In any](log *logger.Logger, name string, svc services.Resource[T, In]) *ResourceHandler[T, In] {
	return &ResourceHandler[T, In]{
		name: name,
		log:  log.With("handler", "ResourceHandler", "resource", name),
		svc:  svc,
	}
}

// GET /api/<resource>?page=&limit=&search=&sort=&<filters>
func (h *ResourceHandler[T, In]) List(c *gin.Context) {
	criteria, err := query.Parse(c.Request.URL.Query(), h.svc.Spec())
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	rows, page, err := h.svc.List(c.Request.Context(), criteria)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondList(c, rows, page)
}

// GET /api/<resource>/:id
func (h *ResourceHandler[T, In]) Get(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// POST /api/<resource>
func (h *ResourceHandler[T, In]) Create(c *gin.Context) {
	var in In
	if !bindBody(c, h.log, &in) {
		return
	}
	row, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondCreated(c, row)
}

// PUT /api/<resource>/:id
func (h *ResourceHandler[T, In]) Update(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	var in In
	if !bindBody(c, h.log, &in) {
		return
	}
	row, err := h.svc.Update(c.Request.Context(), id, in)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// DELETE /api/<resource>/:id
func (h *ResourceHandler[T, In]) Delete(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, gin.H{})
}

// pathID parses a path id. A malformed id cannot name an existing record, so
// it is reported as not found.
func (h *ResourceHandler[T, In]) pathID(c *gin.Context, param string) (uuid.UUID, bool) {
	return parsePathID(c, h.log, param, h.name)
}

func parsePathID(c *gin.Context, log *logger.Logger, param, entity string) (uuid.UUID, bool) {
	id, err := ref.ParseID(c.Param(param))
	if err != nil {
		response.RespondError(c, log, apierr.NotFound("%s not found", entity))
		return uuid.Nil, false
	}
	return id, true
}

func bindBody(c *gin.Context, log *logger.Logger, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var apiErr *apierr.Error
		if errors.As(err, &apiErr) {
			response.RespondError(c, log, apiErr)
			return false
		}
		log.Debug("invalid request body", "error", err)
		response.RespondError(c, log, apierr.New(http.StatusBadRequest, "Invalid request body", err))
		return false
	}
	return true
}

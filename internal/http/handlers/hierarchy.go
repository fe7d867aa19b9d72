package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hbagde424/ElectionAT-sub001/internal/http/response"
	"github.com/hbagde424/ElectionAT-sub001/internal/pkg/cascade"
	"github.com/hbagde424/ElectionAT-sub001/internal/pkg/ref"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/apierr"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
	"github.com/hbagde424/ElectionAT-sub001/internal/services"
)

type HierarchyHandler struct {
	log       *logger.Logger
	hierarchy services.HierarchyService
}

func NewHierarchyHandler(log *logger.Logger, hierarchy services.HierarchyService) *HierarchyHandler {
	return &HierarchyHandler{log: log.With("handler", "HierarchyHandler"), hierarchy: hierarchy}
}

type levelOptions struct {
	Level    string           `json:"level"`
	Selected string           `json:"selected,omitempty"`
	Options  []cascade.Option `json:"options"`
}

// GET /api/hierarchy/options?state_id=&division_id=&parliament_id=&assembly_id=&block_id=&booth_id=
//
// Returns every level's options given the current selection. Selected ids that
// are not children of the level above come back cleared.
func (h *HierarchyHandler) Options(c *gin.Context) {
	var sel cascade.Selection
	for _, level := range cascade.Levels {
		raw := c.Query(level.String() + "_id")
		if raw == "" {
			continue
		}
		id, err := ref.ParseID(raw)
		if err != nil {
			response.RespondError(c, h.log, apierr.BadRequest("Invalid %s_id", level))
			return
		}
		sel = sel.With(level, id)
	}
	res, err := h.hierarchy.Resolve(c.Request.Context(), sel)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	out := make([]levelOptions, 0, len(cascade.Levels))
	for _, level := range cascade.Levels {
		lo := levelOptions{Level: level.String(), Options: res.Options[level]}
		if lo.Options == nil {
			lo.Options = []cascade.Option{}
		}
		if id := res.Selection.Get(level); id != uuid.Nil {
			lo.Selected = id.String()
		}
		out = append(out, lo)
	}
	response.RespondOK(c, out)
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/hbagde424/ElectionAT-sub001/internal/domain/account"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/booth"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/geo"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/politics"
	"github.com/hbagde424/ElectionAT-sub001/internal/http/response"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
	"github.com/hbagde424/ElectionAT-sub001/internal/services"
)

type BoothHandler struct {
	*ResourceHandler[geo.Booth, services.BoothInput]
	booths services.BoothService
}

func NewBoothHandler(log *logger.Logger, booths services.BoothService) *BoothHandler {
	return &BoothHandler{
		ResourceHandler: NewResourceHandler[geo.Booth, services.BoothInput](log, "Booth", booths),
		booths:          booths,
	}
}

// GET /api/booths/:id/summary
func (h *BoothHandler) Summary(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	summary, err := h.booths.Summary(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, summary)
}

type ElectionStatsHandler struct {
	*ResourceHandler[booth.ElectionStats, services.BoothElectionStatsInput]
	stats services.BoothElectionStatsService
}

func NewElectionStatsHandler(log *logger.Logger, stats services.BoothElectionStatsService) *ElectionStatsHandler {
	return &ElectionStatsHandler{
		ResourceHandler: NewResourceHandler[booth.ElectionStats, services.BoothElectionStatsInput](log, "Booth election stats", stats),
		stats:           stats,
	}
}

// GET /api/booth-election-stats/booth/:boothId
func (h *ElectionStatsHandler) ListByBooth(c *gin.Context) {
	boothID, ok := parsePathID(c, h.log, "boothId", "Booth")
	if !ok {
		return
	}
	rows, err := h.stats.ListByBooth(c.Request.Context(), boothID)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondItems(c, rows)
}

type AccomplishedMLAHandler struct {
	*ResourceHandler[politics.AccomplishedMLA, services.AccomplishedMLAInput]
	mlas services.AccomplishedMLAService
}

func NewAccomplishedMLAHandler(log *logger.Logger, mlas services.AccomplishedMLAService) *AccomplishedMLAHandler {
	return &AccomplishedMLAHandler{
		ResourceHandler: NewResourceHandler[politics.AccomplishedMLA, services.AccomplishedMLAInput](log, "Accomplished MLA", mlas),
		mlas:            mlas,
	}
}

// GET /api/accomplished-mlas/current/:assemblyId
func (h *AccomplishedMLAHandler) Current(c *gin.Context) {
	assemblyID, ok := parsePathID(c, h.log, "assemblyId", "Assembly")
	if !ok {
		return
	}
	row, err := h.mlas.GetCurrent(c.Request.Context(), assemblyID)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

// PATCH /api/accomplished-mlas/:id/set-current
func (h *AccomplishedMLAHandler) SetCurrent(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.mlas.SetCurrent(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

type ActivePartyHandler struct {
	*ResourceHandler[booth.ActiveParty, services.ActivePartyInput]
	parties services.ActivePartyService
}

func NewActivePartyHandler(log *logger.Logger, parties services.ActivePartyService) *ActivePartyHandler {
	return &ActivePartyHandler{
		ResourceHandler: NewResourceHandler[booth.ActiveParty, services.ActivePartyInput](log, "Active party", parties),
		parties:         parties,
	}
}

// PATCH /api/active-parties/:id/toggle
func (h *ActivePartyHandler) Toggle(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.parties.Toggle(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

type UserHandler struct {
	*ResourceHandler[account.User, services.UserInput]
	users services.UserService
}

func NewUserHandler(log *logger.Logger, users services.UserService) *UserHandler {
	return &UserHandler{
		ResourceHandler: NewResourceHandler[account.User, services.UserInput](log, "User", users),
		users:           users,
	}
}

// PATCH /api/users/:id/toggle-active
func (h *UserHandler) ToggleActive(c *gin.Context) {
	id, ok := h.pathID(c, "id")
	if !ok {
		return
	}
	row, err := h.users.ToggleActive(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, h.log, err)
		return
	}
	response.RespondOK(c, row)
}

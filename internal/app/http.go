package app

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/domain/booth"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/geo"
	"github.com/hbagde424/ElectionAT-sub001/internal/domain/politics"
	"github.com/hbagde424/ElectionAT-sub001/internal/http"
	httpH "github.com/hbagde424/ElectionAT-sub001/internal/http/handlers"
	httpMW "github.com/hbagde424/ElectionAT-sub001/internal/http/middleware"
	"github.com/hbagde424/ElectionAT-sub001/internal/observability"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
	"github.com/hbagde424/ElectionAT-sub001/internal/services"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health        *httpH.HealthHandler
	Auth          *httpH.AuthHandler
	Hierarchy     *httpH.HierarchyHandler
	Booth         *httpH.BoothHandler
	ElectionStats *httpH.ElectionStatsHandler
	MLA           *httpH.AccomplishedMLAHandler
	ActiveParty   *httpH.ActivePartyHandler
	User          *httpH.UserHandler
	Resources     []http.Resource
}

func wireMiddleware(log *logger.Logger, svcs Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, svcs.Auth),
	}
}

func wireHandlers(log *logger.Logger, db *gorm.DB, s Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:        httpH.NewHealthHandler(db),
		Auth:          httpH.NewAuthHandler(log, s.Auth),
		Hierarchy:     httpH.NewHierarchyHandler(log, s.Hierarchy),
		Booth:         httpH.NewBoothHandler(log, s.Booth),
		ElectionStats: httpH.NewElectionStatsHandler(log, s.BoothElectionStats),
		MLA:           httpH.NewAccomplishedMLAHandler(log, s.AccomplishedMLA),
		ActiveParty:   httpH.NewActivePartyHandler(log, s.ActiveParty),
		User:          httpH.NewUserHandler(log, s.User),
		Resources: []http.Resource{
			{Path: "states", Routes: httpH.NewResourceHandler[geo.State, services.StateInput](log, "State", s.State)},
			{Path: "divisions", Routes: httpH.NewResourceHandler[geo.Division, services.DivisionInput](log, "Division", s.Division)},
			{Path: "parliaments", Routes: httpH.NewResourceHandler[geo.Parliament, services.ParliamentInput](log, "Parliament", s.Parliament)},
			{Path: "assemblies", Routes: httpH.NewResourceHandler[geo.Assembly, services.AssemblyInput](log, "Assembly", s.Assembly)},
			{Path: "districts", Routes: httpH.NewResourceHandler[geo.District, services.DistrictInput](log, "District", s.District)},
			{Path: "blocks", Routes: httpH.NewResourceHandler[geo.Block, services.BlockInput](log, "Block", s.Block)},
			{Path: "parties", Routes: httpH.NewResourceHandler[politics.Party, services.PartyInput](log, "Party", s.Party)},
			{Path: "years", Routes: httpH.NewResourceHandler[politics.ElectionYear, services.ElectionYearInput](log, "Year", s.ElectionYear)},
			{Path: "party-activities", Routes: httpH.NewResourceHandler[politics.PartyActivity, services.PartyActivityInput](log, "Party activity", s.PartyActivity)},
			{Path: "booth-admins", Routes: httpH.NewResourceHandler[booth.Admin, services.BoothAdminInput](log, "Booth admin", s.BoothAdmin)},
			{Path: "booth-demographics", Routes: httpH.NewResourceHandler[booth.Demographics, services.BoothDemographicsInput](log, "Booth demographics", s.BoothDemographics)},
			{Path: "booth-infrastructure", Routes: httpH.NewResourceHandler[booth.Infrastructure, services.BoothInfrastructureInput](log, "Booth infrastructure", s.BoothInfrastructure)},
			{Path: "booth-party-presence", Routes: httpH.NewResourceHandler[booth.PartyPresence, services.BoothPartyPresenceInput](log, "Booth party presence", s.BoothPartyPresence)},
			{Path: "booth-party-vote-shares", Routes: httpH.NewResourceHandler[booth.PartyVoteShare, services.BoothPartyVoteShareInput](log, "Booth party vote share", s.BoothPartyVoteShare)},
			{Path: "local-dynamics", Routes: httpH.NewResourceHandler[booth.LocalDynamics, services.LocalDynamicsInput](log, "Local dynamics", s.LocalDynamics)},
			{Path: "voting-trends", Routes: httpH.NewResourceHandler[booth.VotingTrend, services.VotingTrendInput](log, "Voting trend", s.VotingTrend)},
		},
	}
}

func wireRouter(cfg Config, log *logger.Logger, metrics *observability.Metrics, h Handlers, mw Middleware) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:            log,
		Metrics:        metrics,
		CORSOrigins:    cfg.CORSOrigins,
		TracingEnabled: cfg.Otel.Enabled,
		ServiceName:    cfg.Otel.ServiceName,

		AuthMiddleware: mw.Auth,

		HealthHandler:        h.Health,
		AuthHandler:          h.Auth,
		HierarchyHandler:     h.Hierarchy,
		BoothHandler:         h.Booth,
		ElectionStatsHandler: h.ElectionStats,
		MLAHandler:           h.MLA,
		ActivePartyHandler:   h.ActiveParty,
		UserHandler:          h.User,

		Resources: h.Resources,
	})
}

package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/hbagde424/ElectionAT-sub001/internal/domain/account"
	httpH "github.com/hbagde424/ElectionAT-sub001/internal/http/handlers"
	httpMW "github.com/hbagde424/ElectionAT-sub001/internal/http/middleware"
	"github.com/hbagde424/ElectionAT-sub001/internal/observability"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

// Resource is one plain CRUD resource mounted at /api/<Path>.
type Resource struct {
	Path   string
	Routes httpH.Routes
}

type RouterConfig struct {
	Log            *logger.Logger
	Metrics        *observability.Metrics
	CORSOrigins    []string
	TracingEnabled bool
	ServiceName    string

	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler        *httpH.HealthHandler
	AuthHandler          *httpH.AuthHandler
	HierarchyHandler     *httpH.HierarchyHandler
	BoothHandler         *httpH.BoothHandler
	ElectionStatsHandler *httpH.ElectionStatsHandler
	MLAHandler           *httpH.AccomplishedMLAHandler
	ActivePartyHandler   *httpH.ActivePartyHandler
	UserHandler          *httpH.UserHandler

	Resources []Resource
}

// guards is the middleware chain put in front of each kind of route.
type guards struct {
	write  []gin.HandlerFunc
	delete []gin.HandlerFunc
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingEnabled {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.RequestIDs())
	r.Use(httpMW.AccessLog(cfg.Log))
	r.Use(httpMW.RecordMetrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")

	var g guards
	var superOnly []gin.HandlerFunc
	if am := cfg.AuthMiddleware; am != nil {
		g.write = []gin.HandlerFunc{am.Protect(), am.Authorize(account.RoleAdmin, account.RoleEditor)}
		g.delete = []gin.HandlerFunc{am.Protect(), am.Authorize(account.RoleAdmin)}
		superOnly = []gin.HandlerFunc{am.Protect(), am.Authorize(account.RoleSuperAdmin)}
	}

	// Auth
	if cfg.AuthHandler != nil {
		auth := api.Group("/auth")
		auth.POST("/login", cfg.AuthHandler.Login)
		auth.GET("/me", chain(protectOnly(cfg.AuthMiddleware), cfg.AuthHandler.Me)...)
		auth.POST("/logout", chain(protectOnly(cfg.AuthMiddleware), cfg.AuthHandler.Logout)...)
		auth.POST("/register", chain(superOnly, cfg.AuthHandler.Register)...)
	}

	// Hierarchy
	if cfg.HierarchyHandler != nil {
		api.GET("/hierarchy/options", cfg.HierarchyHandler.Options)
	}

	// Booths
	if h := cfg.BoothHandler; h != nil {
		mount(api, "/booths", h, g)
		api.GET("/booths/:id/summary", h.Summary)
	}
	if h := cfg.ElectionStatsHandler; h != nil {
		mount(api, "/booth-election-stats", h, g)
		api.GET("/booth-election-stats/booth/:boothId", h.ListByBooth)
	}
	if h := cfg.ActivePartyHandler; h != nil {
		mount(api, "/active-parties", h, g)
		api.PATCH("/active-parties/:id/toggle", chain(g.write, h.Toggle)...)
	}

	// MLAs
	if h := cfg.MLAHandler; h != nil {
		mount(api, "/accomplished-mlas", h, g)
		api.GET("/accomplished-mlas/current/:assemblyId", h.Current)
		api.PATCH("/accomplished-mlas/:id/set-current", chain(g.write, h.SetCurrent)...)
	}

	// Users (superAdmin for every method, reads included)
	if h := cfg.UserHandler; h != nil {
		users := api.Group("/users", superOnly...)
		users.GET("", h.List)
		users.GET("/:id", h.Get)
		users.POST("", h.Create)
		users.PUT("/:id", h.Update)
		users.DELETE("/:id", h.Delete)
		users.PATCH("/:id/toggle-active", h.ToggleActive)
	}

	for _, res := range cfg.Resources {
		mount(api, "/"+res.Path, res.Routes, g)
	}

	return r
}

func mount(rg *gin.RouterGroup, path string, h httpH.Routes, g guards) {
	rg.GET(path, h.List)
	rg.GET(path+"/:id", h.Get)
	rg.POST(path, chain(g.write, h.Create)...)
	rg.PUT(path+"/:id", chain(g.write, h.Update)...)
	rg.DELETE(path+"/:id", chain(g.delete, h.Delete)...)
}

func protectOnly(am *httpMW.AuthMiddleware) []gin.HandlerFunc {
	if am == nil {
		return nil
	}
	return []gin.HandlerFunc{am.Protect()}
}

// chain copies guards so route chains never share a backing array.
func chain(guards []gin.HandlerFunc, h gin.HandlerFunc) []gin.HandlerFunc {
	out := make([]gin.HandlerFunc, 0, len(guards)+1)
	out = append(out, guards...)
	return append(out, h)
}

package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/hbagde424/ElectionAT-sub001/internal/data/db"
	"github.com/hbagde424/ElectionAT-sub001/internal/observability"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/cache"
	"github.com/hbagde424/ElectionAT-sub001/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cache    cache.Cache
	Router   *gin.Engine
	Cfg      Config
	Repos    Repos
	Services Services
	Metrics  *observability.Metrics

	shutdownOtel func(context.Context) error
	cancel       context.CancelFunc
}

// New connects to the database and cache, migrates the schema and wires the
// HTTP stack.
func New(ctx context.Context, cfg Config, log *logger.Logger) (*App, error) {
	shutdownOtel := observability.InitOTel(ctx, log, cfg.Otel)

	theDB, err := db.Open(cfg.DB, log)
	if err != nil {
		_ = shutdownOtel(ctx)
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := db.AutoMigrateAll(theDB); err != nil {
		_ = db.Close(theDB)
		_ = shutdownOtel(ctx)
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	c, err := wireCache(cfg, log)
	if err != nil {
		_ = db.Close(theDB)
		_ = shutdownOtel(ctx)
		return nil, err
	}

	a := Assemble(cfg, log, theDB, c, observability.Init(log, cfg.MetricsEnabled))
	a.shutdownOtel = shutdownOtel
	return a, nil
}

// Assemble wires repos, services and the router over already-open resources.
func Assemble(cfg Config, log *logger.Logger, theDB *gorm.DB, c cache.Cache, metrics *observability.Metrics) *App {
	if c == nil {
		c = cache.Noop{}
	}
	reposet := wireRepos(theDB, log)
	serviceset := wireServices(serviceDeps{
		log:       log,
		tx:        db.NewTxRunner(theDB),
		repos:     reposet,
		cache:     c,
		cacheTTL:  cfg.CacheTTL,
		jwtSecret: cfg.JWTSecret,
		jwtExpire: cfg.JWTExpire,
	})
	handlerset := wireHandlers(log, theDB, serviceset)
	middleware := wireMiddleware(log, serviceset)
	router := wireRouter(cfg, log, metrics, handlerset, middleware)

	return &App{
		Log:      log,
		DB:       theDB,
		Cache:    c,
		Router:   router,
		Cfg:      cfg,
		Repos:    reposet,
		Services: serviceset,
		Metrics:  metrics,
	}
}

// Start launches background collectors. They stop on Close.
func (a *App) Start() {
	if a == nil || a.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	a.Metrics.StartDBCollector(ctx, a.Log, a.DB, 0)
	if a.Cfg.Redis.Addr != "" {
		a.Metrics.StartRedisCollector(ctx, a.Log, &goredis.Options{
			Addr:     a.Cfg.Redis.Addr,
			Password: a.Cfg.Redis.Password,
			DB:       a.Cfg.Redis.DB,
		}, 0)
	}
}

func (a *App) Addr() string {
	return ":" + strconv.Itoa(a.Cfg.Port)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	if a.Cache != nil {
		_ = a.Cache.Close()
	}
	if a.shutdownOtel != nil {
		if err := a.shutdownOtel(context.Background()); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	if err := db.Close(a.DB); err != nil {
		a.Log.Warn("database close failed", "error", err)
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}

package app

import (
	"context"
	"database/sql"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gardenmon/internal/cache"
	"gardenmon/internal/config"
	httpserver "gardenmon/internal/http"
	"gardenmon/internal/http/handlers"
	"gardenmon/internal/rangestore"
	"gardenmon/internal/repository"
	"gardenmon/internal/service"
	libdb "gardenmon/libs/db"
	libredis "gardenmon/libs/redis"
)

// App wires dashboard service dependencies.
type App struct {
	server *httpserver.Server
	db     *sql.DB
	redis  *redis.Client
	logger *zap.Logger
}

// New constructs application components. The store client is built once
// here and injected; nothing else touches the connection handle.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	sqlDB, err := libdb.NewPostgresDB(cfg.Store.DSN)
	if err != nil {
		return nil, err
	}

	var (
		redisClient *redis.Client
		persistence service.RangePersistence
	)
	if cfg.RedisEnabled() {
		redisClient, err = libredis.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			sqlDB.Close()
			return nil, err
		}
		persistence = rangestore.NewStore(redisClient)
	} else {
		logger.Info("redis not configured, range edits will not survive restarts")
	}

	repo := repository.NewReadingRepository(sqlDB)
	windows := cache.NewWindowCache(cfg.CacheTTL())
	dashboard := service.NewDashboardService(repo, windows, persistence, cfg.Session.Name, logger)
	dashboard.RestoreRanges(ctx)

	routes := httpserver.Routes{
		Readings: handlers.NewReadingsHandler(dashboard, logger),
		Latest:   handlers.NewLatestHandler(dashboard, logger),
		Overview: handlers.NewOverviewHandler(dashboard, logger),
		GetRange: handlers.NewGetRangesHandler(dashboard),
		PutRange: handlers.NewPutRangesHandler(dashboard, logger),
		Refresh:  handlers.NewRefreshHandler(dashboard),
		Health:   handlers.NewHealthHandler(),
	}

	router := httpserver.NewRouter(routes)
	server := httpserver.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{
		server: server,
		db:     sqlDB,
		redis:  redisClient,
		logger: logger,
	}, nil
}

// Run starts serving HTTP requests.
func (a *App) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close db", zap.Error(err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Warn("failed to close redis", zap.Error(err))
		}
	}
}

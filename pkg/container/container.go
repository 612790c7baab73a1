package container

import (
	"context"
	"fmt"
	"time"

	"library-backend/internal/config"
	publisherHandler "library-backend/internal/domains/publisher/handler"
	publisherRepo "library-backend/internal/domains/publisher/repository"
	publisherService "library-backend/internal/domains/publisher/service"
	infraCache "library-backend/internal/infrastructure/cache"
	"library-backend/internal/infrastructure/database"
	"library-backend/pkg/cache"
	"library-backend/pkg/jwt"
	"library-backend/pkg/logger"

	"github.com/rs/zerolog/log"
)

// Container chứa TẤT CẢ dependencies của application
//
// Thứ tự initialization:
// 1. Config
// 2. Infrastructure (DB, Cache)
// 3. Repositories
// 4. Services
// 5. Handlers
type Container struct {
	// Infrastructure
	Config     *config.Config
	DB         *database.PostgresDB // nil when PUBLISHER_STORE=memory
	Cache      cache.Cache          // nil when the cache is disabled or Redis is unreachable
	JWTManager *jwt.Manager

	// Repository
	PublisherRepo publisherRepo.RepositoryInterface

	// Service
	PublisherService publisherService.ServiceInterface

	// Handler
	PublisherHandler *publisherHandler.PublisherHandler
}

// NewContainer loads configuration from the environment and builds the dependency graph
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.IsDevelopment(), cfg.App.LogLevel)

	return Build(context.Background(), cfg)
}

// Build wires every layer from an already loaded config
func Build(ctx context.Context, cfg *config.Config) (*Container, error) {
	logger.Info("initializing container", map[string]interface{}{
		"environment": cfg.App.Environment,
		"store":       cfg.App.Store,
		"cache":       cfg.Cache.Enabled,
	})

	c := &Container{Config: cfg}

	if err := c.initDatabase(ctx); err != nil {
		return nil, err
	}
	c.initCache(ctx)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTTL())

	c.initRepositories()
	c.initServices()
	c.initHandlers()

	log.Info().Msg("container initialized")
	return c, nil
}

func (c *Container) initDatabase(ctx context.Context) error {
	if c.Config.App.Store == config.StoreMemory {
		logger.Debug("publisher store is in-memory, skipping PostgreSQL")
		return nil
	}

	dbConfig := c.Config.Database.DBConfig

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	db := database.NewPostgresDB(&dbConfig)
	if err := db.Connect(connectCtx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("database health check failed: %w", err)
	}

	if c.Config.Database.AutoMigrate {
		if err := database.Migrate(connectCtx, &dbConfig); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	c.DB = db
	return nil
}

// initCache connects Redis when enabled. Redis failure không critical - log warning và continue.
func (c *Container) initCache(ctx context.Context) {
	if !c.Config.Cache.Enabled {
		return
	}

	redisCache := infraCache.NewRedisCache(
		c.Config.Redis.Host,
		c.Config.Redis.Password,
		c.Config.Redis.DB,
	)

	if err := redisCache.Connect(ctx); err != nil {
		logger.Error("redis connection failed, continuing without cache", err)
		_ = redisCache.Close()
		return
	}

	c.Cache = redisCache
}

func (c *Container) initRepositories() {
	if c.DB != nil {
		c.PublisherRepo = publisherRepo.NewPostgresRepository(c.DB.Pool)
	} else {
		c.PublisherRepo = publisherRepo.NewMemoryRepository()
	}

	if c.Cache != nil {
		c.PublisherRepo = publisherRepo.NewCachedRepository(c.PublisherRepo, c.Cache, c.Config.Cache.TTL)
	}
}

func (c *Container) initServices() {
	c.PublisherService = publisherService.NewPublisherService(c.PublisherRepo)
}

func (c *Container) initHandlers() {
	c.PublisherHandler = publisherHandler.NewPublisherHandler(c.PublisherService)
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logger.Error("failed to close database", err)
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("failed to close redis", err)
		}
	}

	log.Info().Msg("container cleanup completed")
}

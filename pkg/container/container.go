package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mazabin/bookshop/internal/config"
	infraCache "github.com/mazabin/bookshop/internal/infrastructure/cache"
	"github.com/mazabin/bookshop/internal/infrastructure/database"
	"github.com/mazabin/bookshop/pkg/cache"
	"github.com/mazabin/bookshop/pkg/logger"

	"github.com/mazabin/bookshop/internal/domains/author"
	authorHandler "github.com/mazabin/bookshop/internal/domains/author/handler"
	authorRepo "github.com/mazabin/bookshop/internal/domains/author/repository"
	authorService "github.com/mazabin/bookshop/internal/domains/author/service"

	bookHandler "github.com/mazabin/bookshop/internal/domains/book/handler"
	bookRepo "github.com/mazabin/bookshop/internal/domains/book/repository"
	bookService "github.com/mazabin/bookshop/internal/domains/book/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph.
// Every component is a singleton for the lifetime of the process.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config *config.Config
	DB     *database.PostgresDB
	Redis  *infraCache.RedisClient // nil when caching is disabled
	Cache  cache.Cache             // cache.Noop when Redis is unavailable

	// ========================================
	// REPOSITORY LAYER
	// ========================================

	AuthorRepo author.Repository
	BookRepo   bookRepo.RepositoryInterface

	// ========================================
	// SERVICE LAYER
	// ========================================

	AuthorService author.Service
	BookService   bookService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================

	AuthorHandler *authorHandler.AuthorHandler
	BookHandler   *bookHandler.Handler

	log zerolog.Logger
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer loads the configuration and builds the dependency graph.
//
// Order matters:
// 1. Config
// 2. Infrastructure (DB, cache)
// 3. Repositories
// 4. Services
// 5. Handlers
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return New(cfg)
}

// New builds the dependency graph from an already loaded config.
func New(cfg *config.Config) (*Container, error) {
	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	c := &Container{
		Config: cfg,
		log:    logger.Component("container"),
	}
	c.log.Info().Str("environment", cfg.App.Environment).Msg("initializing")

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	c.initCache()
	c.initRepositories()
	c.initServices()
	c.initHandlers()

	c.log.Info().Msg("ready")
	return c, nil
}

// ========================================
// STEP 2: INFRASTRUCTURE
// ========================================

func (c *Container) initDatabase() error {
	db := database.NewPostgresDB(c.Config.Database.DBConfig())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.HealthCheck(ctx); err != nil {
		db.Close()
		return fmt.Errorf("database health check failed: %w", err)
	}

	if c.Config.Database.AutoMigrate {
		if err := database.Bootstrap(ctx, db.Pool); err != nil {
			db.Close()
			return err
		}
	}

	c.DB = db
	return nil
}

// initCache connects to Redis when configured. Caching is optional, so a
// failure only downgrades to cache.Noop.
func (c *Container) initCache() {
	c.Cache = cache.Noop{}

	if !c.Config.Redis.Enabled() {
		c.log.Info().Msg("redis not configured, author cache disabled")
		return
	}

	rc := infraCache.NewRedisClient(c.Config.Redis.Addr(), c.Config.Redis.Password, c.Config.Redis.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rc.Connect(ctx); err != nil {
		c.log.Warn().Err(err).Msg("redis unavailable, author cache disabled")
		_ = rc.Close()
		return
	}

	c.Redis = rc
	c.Cache = infraCache.NewRedisCache(rc.Client)
}

// ========================================
// STEP 3-5: DOMAINS
// ========================================

func (c *Container) initRepositories() {
	c.AuthorRepo = authorRepo.NewCachedRepository(
		authorRepo.NewPostgresRepository(c.DB.Pool),
		c.Cache,
		c.Config.Redis.CacheTTL,
	)
	c.BookRepo = bookRepo.NewPostgresRepository(c.DB.Pool)
}

func (c *Container) initServices() {
	c.AuthorService = authorService.NewAuthorService(c.AuthorRepo)
	c.BookService = bookService.NewBookService(c.BookRepo)
}

func (c *Container) initHandlers() {
	c.AuthorHandler = authorHandler.NewAuthorHandler(c.AuthorService)
	c.BookHandler = bookHandler.NewHandler(c.BookService)
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases infrastructure on shutdown.
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.log.Warn().Err(err).Msg("failed to close redis")
		}
	}

	c.log.Info().Msg("cleanup complete")
}

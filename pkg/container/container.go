package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"trendwatch-backend/internal/config"
	infraCache "trendwatch-backend/internal/infrastructure/cache"
	"trendwatch-backend/internal/infrastructure/database"
	"trendwatch-backend/internal/infrastructure/queue"
	"trendwatch-backend/internal/sitemap"
	"trendwatch-backend/pkg/cache"
	"trendwatch-backend/pkg/jwt"
	"trendwatch-backend/pkg/logger"

	categoryHandler "trendwatch-backend/internal/domains/category/handler"
	postHandler "trendwatch-backend/internal/domains/post/handler"
	postRepo "trendwatch-backend/internal/domains/post/repository"
	postService "trendwatch-backend/internal/domains/post/service"
	subscriberHandler "trendwatch-backend/internal/domains/subscriber/handler"
	subscriberRepo "trendwatch-backend/internal/domains/subscriber/repository"
	subscriberService "trendwatch-backend/internal/domains/subscriber/service"
	"trendwatch-backend/internal/domains/user"
	userHandler "trendwatch-backend/internal/domains/user/handler"
	userRepo "trendwatch-backend/internal/domains/user/repository"
	userService "trendwatch-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container is the root of the dependency graph. Everything in it is
// a singleton for the process lifetime.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config     *config.Config
	DB         *database.PostgresDB
	Cache      cache.Cache
	JWTManager *jwt.Manager
	TaskClient *queue.Client
	SitemapGen *sitemap.Generator

	// ========================================
	// REPOSITORY LAYER (DATA ACCESS)
	// ========================================

	PostRepo       postRepo.PostRepository
	SubscriberRepo subscriberRepo.SubscriberRepository
	UserRepo       user.Repository

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	PostService       postService.PostService
	SubscriberService subscriberService.SubscriberService
	UserService       user.Service

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	PostHandler       *postHandler.PostHandler
	SitemapHandler    *postHandler.SitemapHandler
	CategoryHandler   *categoryHandler.CategoryHandler
	SubscriberHandler *subscriberHandler.SubscriberHandler
	NewsletterHandler *subscriberHandler.NewsletterHandler
	UserHandler       *userHandler.UserHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the dependency graph in order:
// config, infrastructure, repositories, services, handlers.
// Getting the order wrong means a nil dereference at startup.
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	logger.Init(cfg.App.Environment)
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.HealthCheck(context.Background()); err != nil {
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	c.DB = db
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE CACHE
	// ========================================
	log.Println("🔴 Connecting to Redis...")

	redisCache := infraCache.NewRedisCache(
		cfg.Redis.Host,
		cfg.Redis.Password,
		cfg.Redis.DB,
	)

	// Connect is not part of the cache interface, so type-assert.
	// Redis being down is not fatal; the services fall back to the
	// database on cache misses.
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		if err := rc.Connect(context.Background()); err != nil {
			log.Printf("⚠️  Redis connection failed (non-critical): %v", err)
		} else {
			log.Println("✅ Redis connected")
		}
	}

	c.Cache = redisCache

	// ========================================
	// STEP 4: SHARED COMPONENTS
	// ========================================

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	c.TaskClient = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	c.SitemapGen = sitemap.NewGenerator(cfg.Site.BaseURL)

	// ========================================
	// STEP 5: INITIALIZE REPOSITORIES
	// ========================================
	log.Println("📦 Initializing repositories...")

	c.initRepositories()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 6: INITIALIZE SERVICES
	// ========================================
	log.Println("⚙️  Initializing services...")

	c.initServices()
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 7: INITIALIZE HANDLERS
	// ========================================
	log.Println("🎯 Initializing handlers...")

	c.initHandlers()
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// PRIVATE INITIALIZATION METHODS
// ========================================

func (c *Container) initRepositories() {
	pool := c.DB.Pool

	c.PostRepo = postRepo.NewPostgresRepository(pool)
	c.SubscriberRepo = subscriberRepo.NewPostgresRepository(pool)
	c.UserRepo = userRepo.NewPostgresRepository(pool)
}

func (c *Container) initServices() {
	c.PostService = postService.NewPostService(c.PostRepo, c.Cache)
	c.SubscriberService = subscriberService.NewSubscriberService(c.SubscriberRepo, c.TaskClient)
	c.UserService = userService.NewUserService(c.UserRepo, c.JWTManager)
}

func (c *Container) initHandlers() {
	c.PostHandler = postHandler.NewPostHandler(c.PostService)
	c.SitemapHandler = postHandler.NewSitemapHandler(c.SitemapGen, c.PostService)
	c.CategoryHandler = categoryHandler.NewCategoryHandler()
	c.SubscriberHandler = subscriberHandler.NewSubscriberHandler(c.SubscriberService)
	c.NewsletterHandler = subscriberHandler.NewNewsletterHandler(c.TaskClient)
	c.UserHandler = userHandler.NewUserHandler(c.UserService)
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases held resources. Called during graceful shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.TaskClient != nil {
		if err := c.TaskClient.Close(); err != nil {
			log.Printf("⚠️  Task client close failed: %v", err)
		} else {
			log.Println("✅ Task client closed")
		}
	}

	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			log.Printf("⚠️  Redis close failed: %v", err)
		} else {
			log.Println("✅ Redis connection closed")
		}
	}

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("✅ Database connections closed")
	}
}

package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"trendwatch-backend/internal/shared/middleware"
	"trendwatch-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.ClientIP(),
		middleware.Logger(),
		middleware.CORS(c.Config.Site.AllowedOrigins),
	)

	// The crawler-facing sitemap lives outside the API prefix
	router.GET("/sitemap.xml", c.SitemapHandler.GetSitemap)

	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", healthCheckHandler(c))
		v1.GET("/db-test", databaseTestHandler(c))

		setupAuthRoutes(v1, c)
		setupPublicRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", c.UserHandler.Login)
		auth.POST("/refresh", c.UserHandler.Refresh)
	}
}

// ========================================
// PUBLIC READER ROUTES
// ========================================
func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	posts := v1.Group("/posts")
	{
		posts.GET("", c.PostHandler.ListPosts)
		posts.GET("/trending", c.PostHandler.ListTrending)
	}

	articles := v1.Group("/articles")
	{
		articles.GET("/:slug", c.PostHandler.GetArticle)
		articles.POST("/:slug/reactions", c.PostHandler.React)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", c.CategoryHandler.GetCategories)
		categories.GET("/:id", c.CategoryHandler.GetCategory)
	}

	subscribers := v1.Group("/subscribers")
	{
		subscribers.POST("", c.SubscriberHandler.Subscribe)
		subscribers.POST("/unsubscribe", c.SubscriberHandler.Unsubscribe)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(
		middleware.Auth(c.JWTManager),
		middleware.Admin(),
	)
	{
		posts := admin.Group("/posts")
		{
			posts.GET("", c.PostHandler.ListAdminPosts)
			posts.POST("", c.PostHandler.CreatePost)
			posts.GET("/stats", c.PostHandler.GetStats)
			posts.POST("/import", c.PostHandler.ImportPosts)
			posts.GET("/:id", c.PostHandler.GetAdminPost)
			posts.PUT("/:id", c.PostHandler.UpdatePost)
			posts.DELETE("/:id", c.PostHandler.DeletePost)
			posts.PATCH("/:id/status", c.PostHandler.UpdateStatus)
			posts.PATCH("/:id/trending", c.PostHandler.UpdateTrending)
		}

		subscribers := admin.Group("/subscribers")
		{
			subscribers.GET("", c.SubscriberHandler.ListSubscribers)
			subscribers.GET("/stats", c.SubscriberHandler.GetStats)
			subscribers.GET("/export", c.SubscriberHandler.ExportSubscribers)
			subscribers.DELETE("/:id", c.SubscriberHandler.DeleteSubscriber)
		}

		admin.GET("/sitemap", c.SitemapHandler.GetSitemap)
		admin.POST("/newsletter/digest", c.NewsletterHandler.TriggerDigest)

		users := admin.Group("/users")
		{
			users.GET("/me", c.UserHandler.Me)
			users.PUT("/change-password", c.UserHandler.ChangePassword)
		}
	}
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
			"services":  gin.H{},
		}

		// Check database
		dbStatus := "ok"
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			dbStatus = "disconnected"
			health["status"] = "degraded"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		// Check redis
		redisStatus := "ok"
		if appCtx.Cache == nil {
			redisStatus = "disconnected"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}

// ========================================
// DATABASE TEST HANDLER
// ========================================
func databaseTestHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		if appCtx.DB == nil || appCtx.DB.Pool == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Database not connected",
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var version string
		if err := appCtx.DB.Pool.QueryRow(ctx, "SELECT version()").Scan(&version); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": fmt.Sprintf("Query failed: %v", err),
			})
			return
		}

		stats := appCtx.DB.Pool.Stat()

		c.JSON(http.StatusOK, gin.H{
			"message": "Database test successful",
			"database": gin.H{
				"postgres_version": version,
				"pool_stats": gin.H{
					"total_connections":    stats.TotalConns(),
					"idle_connections":     stats.IdleConns(),
					"acquired_connections": stats.AcquiredConns(),
				},
			},
		})
	}
}

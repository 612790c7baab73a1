package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"
	"library-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

// publisherRoles may read and write publishers
var publisherRoles = []string{"USER", "ADMIN"}

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.BaseURL(),
	)

	router.NoRoute(func(ctx *gin.Context) {
		response.NotFound(ctx, "Resource not found")
	})

	router.GET("/health", healthCheckHandler(c))

	setupPublisherRoutes(&router.RouterGroup, c)

	return router
}

// ========================================
// PUBLISHER ROUTES
// ========================================
func setupPublisherRoutes(rg *gin.RouterGroup, c *container.Container) {
	c.PublisherHandler.RegisterRoutes(rg,
		middleware.AuthMiddleware(c.JWTManager),
		middleware.RequireRoles(publisherRoles...),
	)
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
			"store":     appCtx.Config.App.Store,
		}

		// Check database
		dbStatus := "disabled"
		if appCtx.DB != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			dbStatus = "ok"
			if err := appCtx.DB.HealthCheck(ctx); err != nil {
				dbStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			} else if stats, err := appCtx.DB.Stats(); err == nil {
				health["pool"] = stats
			}
		}

		// Check redis, failure không làm service unavailable
		redisStatus := "disabled"
		if appCtx.Cache != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			redisStatus = "ok"
			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			}
		}

		health["services"] = gin.H{
			"database": dbStatus,
			"redis":    redisStatus,
		}

		statusCode := http.StatusOK
		if dbStatus != "ok" && dbStatus != "disabled" {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, health)
	}
}

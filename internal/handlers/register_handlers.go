package handlers

import (
	"fmt"

	"github.com/SscSPs/blog_api/cmd/docs"
	portsrepo "github.com/SscSPs/blog_api/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/blog_api/internal/core/ports/services"
	"github.com/SscSPs/blog_api/internal/middleware"
	"github.com/SscSPs/blog_api/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies are the collaborators the HTTP surface is built from.
type Dependencies struct {
	Services *portssvc.ServiceContainer
	// Checks are pinged by the readiness endpoint, keyed by name.
	Checks map[string]portsrepo.Pinger
	// Redis backs the rate limiters when set; counters stay in memory otherwise.
	Redis *redis.Client
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Dependencies) error {
	if err := registerValidators(); err != nil {
		return err
	}

	r.Use(middleware.CORS(cfg.WhitelistedOrigins, cfg.IsProduction), middleware.Metrics())

	r.GET("/health", getHealth)
	r.GET("/health/ready", readinessHandler(deps.Checks))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if err := setupAPIV1Routes(r, cfg, deps); err != nil {
		return err
	}

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, deps Dependencies) error {
	globalLimiter, err := middleware.NewLimiter(cfg.RateLimit, "limiter:global", deps.Redis)
	if err != nil {
		return fmt.Errorf("global rate limiter: %w", err)
	}
	authLimiter, err := middleware.NewLimiter(cfg.AuthRateLimit, "limiter:auth", deps.Redis)
	if err != nil {
		return fmt.Errorf("auth rate limiter: %w", err)
	}

	v1 := r.Group("/api/v1", middleware.RateLimit(globalLimiter))
	v1.GET("", getStatus)

	registerAuthRoutes(v1, cfg, deps.Services, middleware.RateLimit(authLimiter))
	registerUserRoutes(v1, cfg, deps.Services)
	registerBlogRoutes(v1, deps.Services)
	return nil
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

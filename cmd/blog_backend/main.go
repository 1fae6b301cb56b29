package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	portsrepo "github.com/SscSPs/blog_api/internal/core/ports/repositories"
	"github.com/SscSPs/blog_api/internal/core/services"
	"github.com/SscSPs/blog_api/internal/handlers"
	"github.com/SscSPs/blog_api/internal/middleware"
	"github.com/SscSPs/blog_api/internal/platform/config"
	"github.com/SscSPs/blog_api/internal/platform/metrics"
	rediscache "github.com/SscSPs/blog_api/internal/repositories/cache/redis"
	"github.com/SscSPs/blog_api/internal/repositories/database/mongodb"
	"github.com/SscSPs/blog_api/internal/repositories/database/pgsql"
	"github.com/SscSPs/blog_api/internal/repositories/memory"
	"github.com/SscSPs/blog_api/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title Blog API
// @version 1.0
// @description Authentication, session and blog backend.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Bootstrap logger until the configured level is known
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Server stopped")
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	checks := map[string]portsrepo.Pinger{"store": repos.Ping}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer database.CloseRedisClient(redisClient)
		checks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}

	if cfg.SessionStore == config.SessionStoreRedis {
		logger.Info("Refresh tokens stored in redis")
		repos.RefreshTokenRepo = rediscache.NewRefreshTokenRepository(redisClient)
	}

	serviceContainer, err := services.NewServiceContainer(cfg, repos)
	if err != nil {
		return err
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	if err := handlers.RegisterRoutes(r, cfg, handlers.Dependencies{
		Services: serviceContainer,
		Checks:   checks,
		Redis:    redisClient,
	}); err != nil {
		return fmt.Errorf("failed to register routes: %w", err)
	}

	go runRefreshTokenJanitor(ctx, repos.RefreshTokenRepo, cfg.RefreshTokenCleanupInterval, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutdown signal received", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// openStore connects the configured primary store and returns its repositories
// together with a function that releases the connection.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreMongo:
		client, err := database.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoAppName, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		closeFn := func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			database.CloseMongoClient(closeCtx, client)
		}
		db := client.Database(cfg.MongoDBName)
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			closeFn()
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("failed to ensure mongo indexes: %w", err)
		}
		return mongodb.NewRepositoryProvider(db), closeFn, nil

	case config.StorePostgres:
		logger.Info("Running database migrations...")
		if err := pgsql.RunMigrations(cfg.DatabaseURL, logger); err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil

	default:
		logger.Warn("Using in-memory store; data is lost on restart")
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	}
}

// runRefreshTokenJanitor periodically removes expired refresh-token records from
// stores that do not expire them on their own.
func runRefreshTokenJanitor(ctx context.Context, repo portsrepo.RefreshTokenRepository, interval time.Duration, logger *slog.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := repo.DeleteExpiredRefreshTokens(ctx, time.Now().UTC())
			if err != nil {
				logger.Error("Failed to purge expired refresh tokens", slog.String("error", err.Error()))
				continue
			}
			if removed > 0 {
				metrics.RefreshTokensPurged.Add(float64(removed))
				logger.Info("Purged expired refresh tokens", slog.Int64("count", removed))
			}
		}
	}
}

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/supplier_ledger/internal/core/services"
	"github.com/SscSPs/supplier_ledger/internal/handlers"
	"github.com/SscSPs/supplier_ledger/internal/middleware"
	"github.com/SscSPs/supplier_ledger/internal/platform/config"
	rediscache "github.com/SscSPs/supplier_ledger/internal/repositories/cache/redis"
	"github.com/SscSPs/supplier_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/supplier_ledger/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Supplier Ledger API
// @version 1.0
// @description Supplier statements and account balances computed from purchases and payment vouchers.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	repos := pgsql.NewRepositoryProvider(dbPool)

	if cfg.RedisURL != "" {
		redisClient, err := rediscache.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			// Statements are still served, just recomputed on every request
			logger.Warn("Statement cache unavailable", slog.String("error", err.Error()))
		} else {
			defer redisClient.Close()
			repos.StatementCache = rediscache.NewStatementCache(redisClient, cfg.StatementCacheTTL)
			logger.Info("Statement cache enabled", slog.Duration("ttl", cfg.StatementCacheTTL))
		}
	}

	serviceContainer := services.NewServiceContainer(repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

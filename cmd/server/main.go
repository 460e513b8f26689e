package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/playforge/bangate/internal/api"
	cacheredis "github.com/playforge/bangate/internal/cache/redis"
	"github.com/playforge/bangate/internal/config"
	"github.com/playforge/bangate/internal/factory"
	"github.com/playforge/bangate/internal/storage/sqlite"
)

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Build factory config from environment
	factoryCfg := factory.Config{
		DBPath:    cfg.DBPath,
		CacheType: cfg.CacheType,
		Logger:    logger,
	}

	// Configure Redis if the cache type is redis
	if cfg.CacheType == factory.CacheTypeRedis {
		if cfg.RedisURL == "" {
			logger.Error("BANGATE_REDIS_URL required when BANGATE_CACHE=redis")
			os.Exit(1)
		}
		redisCfg := cacheredis.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.AdminTokenHash == "" {
		logger.Warn("BANGATE_ADMIN_TOKEN_HASH not set, admin endpoints disabled")
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:         logger,
		VerdictService: app.VerdictService,
		AuditService:   app.AuditService,
		Store:          app.Store,
		AdminTokenHash: cfg.AdminTokenHash,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Let in-flight cache and audit writes finish before closing storage
	app.Tasks.Wait()

	if closer, ok := app.Store.(*sqlite.Store); ok {
		if err := closer.Close(); err != nil {
			logger.Error("failed to close store", slog.String("error", err.Error()))
		}
	}

	logger.Info("server stopped")
}

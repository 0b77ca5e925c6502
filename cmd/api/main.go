package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"card-marketplace/config"
	"card-marketplace/internal/adapter/bank"
	httpHandler "card-marketplace/internal/adapter/http/handler"
	"card-marketplace/internal/adapter/registry"
	pgStorage "card-marketplace/internal/adapter/storage/postgres"
	redisStorage "card-marketplace/internal/adapter/storage/redis"
	"card-marketplace/internal/core/ports"
	"card-marketplace/internal/service"
	"card-marketplace/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting Card Marketplace")

	ctx := context.Background()

	// Initialize PostgreSQL pool
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()
	log.Info().Msg("PostgreSQL connected")

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize repositories
	saleRepo := pgStorage.NewSaleRepo(pool)
	allowRepo := pgStorage.NewAllowlistRepo(pool)
	nonceStore := redisStorage.NewNonceStore(rdb)

	// Initialize external clients
	registryClient := registry.NewClient(cfg.Registry.BaseURL,
		&http.Client{Timeout: cfg.Registry.CallTimeout}, logger.Component(log, "registry"))
	bankClient := bank.NewClient(cfg.Bank.BaseURL,
		&http.Client{Timeout: cfg.Bank.Timeout}, logger.Component(log, "bank"))

	// Initialize services
	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	listingSvc := service.NewListingService(saleRepo, allowRepo, logger.Component(log, "listing"))
	allowlistSvc := service.NewAllowlistService(allowRepo, logger.Component(log, "allowlist"))
	querySvc := service.NewQueryService(saleRepo)
	purchaseSvc := service.NewPurchaseService(saleRepo, registryClient, bankClient, service.PurchaseConfig{
		FeeRate:             cfg.Market.FeeRate,
		FeeRecipient:        cfg.Market.FeeRecipient,
		TransferMemo:        cfg.Market.TransferMemo,
		RegistryCallTimeout: cfg.Registry.CallTimeout,
	}, logger.Component(log, "purchase"))

	// Initialize health checkers
	pgHealth := pgStorage.NewHealthCheck(pool)
	redisHealth := redisStorage.NewHealthCheck(rdb)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		ListingSvc:     listingSvc,
		PurchaseSvc:    purchaseSvc,
		AllowlistSvc:   allowlistSvc,
		QuerySvc:       querySvc,
		NonceStore:     nonceStore,
		TokenSvc:       tokenSvc,
		HealthCheckers: []ports.HealthChecker{pgHealth, redisHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	// Let in-flight settlements reach a terminal state before exiting.
	purchaseSvc.Drain()

	log.Info().Msg("Server exited")
}

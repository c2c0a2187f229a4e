package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/cache"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/events"
	"storefront/internal/logger"
	"storefront/internal/store"
	"storefront/internal/storefront"
	"storefront/internal/worker"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Initialize logger
	logger := logger.NewForEnv(cfg.LogLevel, cfg.Env)
	defer logger.Sync()

	if len(cfg.KafkaBrokerList()) == 0 {
		logger.Fatal("KAFKA_BROKERS must be set to run the worker")
	}

	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Stock changes must evict cached products the API is serving
	var productCache cache.ProductCache = cache.Nop{}
	if cfg.RedisURL != "" {
		rc, err := cache.NewRedisCache(cfg.RedisURL, cfg.CatalogTTL)
		if err != nil {
			logger.Warn("Redis unavailable, cached products may be stale: %v", err)
		} else {
			defer rc.Close()
			productCache = rc
		}
	}

	svc := storefront.NewService(store.NewGormStore(db.DB), productCache, events.NopPublisher{}, cfg.Pricing(), logger)

	// Initialize worker
	w := worker.New(cfg, logger, svc)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	// Start worker
	logger.Info("Starting worker...")
	go func() {
		w.Start(ctx)
		close(done)
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down worker...")
	cancel()
	<-done
	w.Stop()
}

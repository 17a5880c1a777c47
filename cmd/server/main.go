package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"exocatalog-service/internal/domain/repository"
	"exocatalog-service/internal/infrastructure/config"
	"exocatalog-service/internal/infrastructure/persistence"
	"exocatalog-service/internal/interface/api"
	"exocatalog-service/internal/interface/nasa"
	blobRepo "exocatalog-service/internal/interface/repository"
	"exocatalog-service/internal/usecase"
	"exocatalog-service/pkg/logger"
	"exocatalog-service/pkg/metrics"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	// Create logger
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Starting Exocatalog Service", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	appMetrics := metrics.NewMetrics("exocatalog")

	// Set up the cache blob backend
	blobs, mongoClient, err := buildBlobStore(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to set up cache backend", "backend", cfg.CacheBackend, "error", err)
	}

	cache := usecase.NewCacheStore(
		blobs,
		cfg.CacheFreshWindow,
		cfg.CacheUsableWindow,
		cfg.CacheSizeBudget,
		nil,
		log,
	)

	// Set up the pipeline
	source := nasa.NewTAPClient(cfg.SourceURL, cfg.SourceTimeout, log)
	mapper := usecase.NewFieldMapper(log)
	validator := usecase.NewValidator(log)
	pipeline := usecase.NewPipeline(source, mapper, validator, cache, appMetrics, log)

	catalog := usecase.NewCatalogStore()
	service := usecase.NewCatalogService(pipeline, catalog, cfg.SyntheticCount, appMetrics, log)

	// Initial load: the cascade guarantees a populated catalog
	result := service.LoadPlanets(ctx, func(phase string) {
		log.Debug("Load progress", "phase", phase)
	})
	log.Info("Initial catalog ready",
		"source", result.Source,
		"records", len(catalog.Snapshot()),
		"fromCache", result.FromCache)

	// Periodic refresh, plus an early retry when the initial load was degraded
	scheduler := usecase.NewRefreshScheduler(service, cfg.RefreshInterval, log)
	if err := scheduler.Start(ctx); err != nil {
		log.Fatal("Failed to start refresh scheduler", "error", err)
	}
	if result.Error != "" {
		log.Warn("Initial load degraded, scheduling early refresh", "delay", cfg.StaleRefreshDelay.String())
		scheduler.ScheduleOnce(ctx, cfg.StaleRefreshDelay)
	}

	// Set up HTTP server
	handler := api.NewHandler(catalog, service, log)
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler.Routes(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	scheduler.Stop()
	cancel() // Cancel the context to stop all goroutines

	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			log.Error("MongoDB disconnect error", "error", err)
		}
	}

	log.Info("Exocatalog Service stopped")
}

// buildBlobStore picks the cache backend from configuration. The returned
// mongo client is non-nil only for the mongo backend so main can disconnect
// it on shutdown.
func buildBlobStore(ctx context.Context, cfg *config.Config, log logger.Logger) (repository.BlobStore, *mongo.Client, error) {
	switch cfg.CacheBackend {
	case "memory":
		log.Info("Using in-memory cache backend")
		return blobRepo.NewMemoryBlobStore(), nil, nil

	case "mongo":
		log.Info("Connecting to MongoDB", "db", cfg.MongoDB)
		client, db, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, nil, err
		}
		return blobRepo.NewMongoBlobStore(db), client, nil

	case "redis":
		log.Info("Connecting to Redis", "addr", cfg.RedisAddr)
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		return blobRepo.NewRedisBlobStore(client), nil, nil

	default: // sqlite
		log.Info("Opening SQLite cache", "path", cfg.SQLitePath)
		db, err := persistence.NewSQLiteDB(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		store, err := blobRepo.NewSQLiteBlobStore(db)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	}
}

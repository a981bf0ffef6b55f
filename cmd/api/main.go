package main

// @title Nui Ba Den Tourism Service API
// @version 1.0.0
// @description REST backend for the Núi Bà Đen tourism application.
// @description
// @description Main capabilities:
// @description - JSON collections for the info, POI, activity, service, event, tour and restaurant list pages
// @description - Map session API: catalog snapshot, category filter, name search, selection and highlight state, viewport control
// @description - One-shot device geolocation handling
// @description - Statistics over the loaded collections

// @contact.name API Support
// @contact.email support@nuibaden.example.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/nuibaden/tourism-service/docs/swagger"
	"github.com/nuibaden/tourism-service/internal/config"
	httpDelivery "github.com/nuibaden/tourism-service/internal/delivery/http"
	"github.com/nuibaden/tourism-service/internal/delivery/http/handler"
	"github.com/nuibaden/tourism-service/internal/domain/repository"
	"github.com/nuibaden/tourism-service/internal/fixture"
	"github.com/nuibaden/tourism-service/internal/infrastructure/poisource"
	"github.com/nuibaden/tourism-service/internal/pkg/icon"
	"github.com/nuibaden/tourism-service/internal/pkg/logger"
	"github.com/nuibaden/tourism-service/internal/repository/cache"
	"github.com/nuibaden/tourism-service/internal/repository/file"
	"github.com/nuibaden/tourism-service/internal/usecase"
	"github.com/nuibaden/tourism-service/internal/worker"
	"github.com/nuibaden/tourism-service/internal/worker/sessions"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Nui Ba Den Tourism Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Initialize repositories. The catalog comes either from the
	// remote source or from local JSON files with built-in fallbacks.
	store := file.NewStore(&cfg.Data, fixture.Default(), log)

	var catalogRepo repository.CatalogRepository
	if cfg.Source.URL != "" {
		catalogRepo = poisource.NewClient(&cfg.Source, log)
		log.Info("Using remote catalog source", zap.String("url", cfg.Source.URL))
	} else {
		catalogRepo = file.NewCatalogRepository(store)
		log.Info("Using file catalog source", zap.String("dir", cfg.Data.Dir))
	}

	contentRepo := file.NewContentRepository(store)

	// 4. Connect to Redis when response caching is enabled
	var cacheRepo repository.CacheRepository
	var redisClient *cache.Redis
	if cfg.Cache.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Health(ctx); err != nil {
			cancel()
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		cancel()

		cacheRepo = cache.NewCacheRepository(redisClient)
		log.Info("Redis connected")
	}

	log.Info("Repositories initialized")

	// 5. Initialize use cases
	icons := icon.NewResolver(cfg.Map.DefaultIconURL)

	catalogUC := usecase.NewCatalogUseCase(catalogRepo, log)

	sessionManager := usecase.NewMapSessionManager(
		catalogUC,
		icons,
		log,
		cfg.Map.HighlightTTL,
	)

	searchUC := usecase.NewSearchUseCase(catalogRepo, icons, log)

	contentUC := usecase.NewContentUseCase(
		catalogRepo,
		contentRepo,
		cacheRepo,
		log,
		cfg.Cache.CollectionCacheTTL,
	)

	statsUC := usecase.NewStatsUseCase(
		catalogRepo,
		contentRepo,
		cacheRepo,
		log,
		cfg.Cache.StatsCacheTTL,
	)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP handlers
	contentHandler := handler.NewContentHandler(contentUC, log)
	mapSessionHandler := handler.NewMapSessionHandler(sessionManager, log)
	poiHandler := handler.NewPOIHandler(log)
	searchHandler := handler.NewSearchHandler(searchUC, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)

	log.Info("HTTP handlers initialized")

	// 7. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		contentHandler,
		mapSessionHandler,
		poiHandler,
		searchHandler,
		statsHandler,
	)

	log.Info("HTTP server initialized")

	// 8. Start background workers
	workerManager := worker.NewWorkerManager(log)
	workerManager.Register(sessions.NewReaperWorker(
		sessionManager,
		cfg.Session.SweepInterval,
		cfg.Session.TTL,
		log,
	))

	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	if err := workerManager.Start(workerCtx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := workerManager.Stop(); err != nil {
		log.Error("Worker shutdown error", zap.Error(err))
	}

	// Cancels pending highlight timers and discards in-flight loads.
	sessionManager.Shutdown()

	log.Info("Server stopped successfully")
}

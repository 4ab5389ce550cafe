package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dataMarket/app/echo-server/router"
	"dataMarket/business/category"
	"dataMarket/business/dataset"
	"dataMarket/business/orders"
	"dataMarket/business/recommendation"
	"dataMarket/internal/middleware"
	"dataMarket/internal/repository/breaker"
	psqlRepo "dataMarket/internal/repository/postgres"
	redisRepo "dataMarket/internal/repository/redis"
	"dataMarket/internal/rest"
	"dataMarket/pkg/config"
	"dataMarket/pkg/database"
	redisClient "dataMarket/pkg/database/redis"
	"dataMarket/pkg/logger"
	"dataMarket/pkg/metrics"
	"dataMarket/pkg/utils"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	defer logger.Sync()
	logger.Info("Starting Data Market API", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)
	metrics.Init()

	recoCfg, err := recommendation.LoadConfigFile(cfg.Recommendation.ConfigFile)
	if err != nil {
		logger.Fatal("Failed to load recommendation config", "error", err)
	}

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	logger.Info("Database connected successfully")

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("Failed to get database handle", "error", err)
	}

	// Init repo
	ordersRepo := psqlRepo.NewOrdersRepository(db)
	datasetRepo := psqlRepo.NewDatasetRepository(db)
	store := breaker.NewStore(ordersRepo, datasetRepo, breaker.Settings{
		Name:        "reco-store",
		MaxFailures: cfg.Recommendation.BreakerFailures,
		OpenTimeout: cfg.Recommendation.BreakerTimeout,
	})

	// snapshot cache is optional; without it the engine reads through the breaker
	var (
		recoOrders   recommendation.OrderRepository   = store
		recoDatasets recommendation.DatasetRepository = store
		invalidator  rest.SnapshotInvalidator
	)
	if cfg.Redis.Enabled {
		client, err := redisClient.NewRedisClient(cfg)
		if err != nil {
			logger.Warn("Redis unavailable, snapshot cache disabled", "error", err)
		} else {
			defer redisClient.CloseRedisClient(client)
			snapshots := redisRepo.NewSnapshotRepository(client, store, store, cfg.Redis.SnapshotTTL)
			recoOrders, recoDatasets, invalidator = snapshots, snapshots, snapshots
			logger.Info("Snapshot cache enabled", "ttl", cfg.Redis.SnapshotTTL.String())
		}
	}

	// Init service
	recoService := recommendation.NewRecommendationService(recoOrders, recoDatasets, recoCfg)
	datasetService := dataset.NewDatasetService(store)
	categoryService := category.NewCategoryService(recoDatasets)
	ordersService := orders.NewOrdersService(store, store)

	// Init handler
	recoHandler := rest.NewRecommendationHandler(recoService, cfg.Server.RequestTimeout)
	recoAdminHandler := rest.NewRecommendationAdminHandler(recoService, invalidator)
	datasetHandler := rest.NewDatasetHandler(datasetService)
	categoryHandler := rest.NewCategoryHandler(categoryService)
	ordersHandler := rest.NewOrdersHandler(ordersService)
	healthHandler := rest.NewHealthHandler(sqlDB, cfg.App.Version)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.TraceID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, echo.HeaderXRequestID},
	}))

	e.GET("/healthz", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Setup routes
	api := e.Group("/api/v1")
	router.SetRecommendationRoutes(api, recoHandler)
	router.SetRecommendationAdminRoutes(api, recoAdminHandler)
	router.SetDatasetRoutes(api, datasetHandler)
	router.SetCategoryRoutes(api, categoryHandler)
	router.SetOrdersRoutes(api, ordersHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if err := database.ClosePostgres(db); err != nil {
		logger.Error("Failed to close database", "error", err)
	}

	logger.Info("Server stopped")
}

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

	"github.com/labstack/echo/v4"
	"github.com/piresc/ridermap/internal/pkg/config"
	"github.com/piresc/ridermap/internal/pkg/database"
	"github.com/piresc/ridermap/internal/pkg/health"
	"github.com/piresc/ridermap/internal/pkg/ingest"
	"github.com/piresc/ridermap/internal/pkg/logger"
	"github.com/piresc/ridermap/internal/pkg/metrics"
	"github.com/piresc/ridermap/internal/pkg/middleware"
	"github.com/piresc/ridermap/services/planner/handler"
	"github.com/piresc/ridermap/services/planner/repository"
	"github.com/piresc/ridermap/services/planner/usecase"
)

func main() {
	appName := "planner-service"
	configPath := "config/planner.env"
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
	)

	// Initialize Redis client backing the dataset cache
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
	}
	defer redisClient.Close()

	registry := metrics.NewRegistry()

	// Initialize ingestion pipeline
	decoder := ingest.NewDecoder(configs.Planner.UploadMaxBytes)
	pipeline := ingest.NewPipeline(decoder, configs.Depot, registry)

	// Initialize repository
	datasetRepo := repository.NewDatasetRepository(redisClient)

	// Initialize usecase
	plannerUC, err := usecase.NewPlannerUC(configs, datasetRepo, pipeline, registry)
	if err != nil {
		zapLogger.Fatal("Failed to initialize planner use case", logger.Err(err))
	}

	// Initialize handlers
	plannerHandler := handler.NewHandler(plannerUC)

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	if configs.Server.ReadTimeout > 0 {
		e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	}
	if configs.Server.WriteTimeout > 0 {
		e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second
	}

	// Add middlewares (panic recovery should be first)
	e.Use(middleware.PanicRecoveryWithZapMiddleware(zapLogger))
	e.Use(middleware.RequestContextMiddleware(appName))
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	e.Use(middleware.UploadBodyLimit(configs.Planner.UploadMaxBytes))

	// Health and metrics endpoints
	health.RegisterHealthEndpoints(e, appName, configs.App.Version)
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	health.RegisterEnhancedHealthEndpoints(e, appName, configs.App.Version, healthService)
	e.GET("/metrics", echo.WrapHandler(registry.Handler()))

	// Register service routes
	uploadLimiter := middleware.IPRateLimiter(
		configs.Planner.UploadRateLimit,
		time.Duration(configs.Planner.UploadRatePeriod)*time.Second,
		redisClient,
	)
	plannerHandler.RegisterRoutes(e, uploadLimiter)

	// Start server in goroutine
	go func() {
		addr := fmt.Sprintf("%s:%d", configs.Server.Host, configs.Server.Port)
		zapLogger.Info("Starting HTTP server",
			logger.String("address", addr),
			logger.String("app", appName))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Failed to start server", logger.Err(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	zapLogger.Info("Received shutdown signal", logger.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	zapLogger.Info("Shutting down HTTP server...")
	if err := e.Shutdown(ctx); err != nil {
		zapLogger.Error("Server forced to shutdown", logger.Err(err))
	}

	zapLogger.Info("Closing Redis connection...")
	if err := redisClient.Close(); err != nil {
		zapLogger.Error("Error closing Redis connection", logger.Err(err))
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}

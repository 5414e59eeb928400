package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/UNI-F-2025/campus-service/internal/config"
	"github.com/UNI-F-2025/campus-service/internal/events"
	"github.com/UNI-F-2025/campus-service/internal/handlers"
	"github.com/UNI-F-2025/campus-service/internal/repositories/postgres"
	"github.com/UNI-F-2025/campus-service/internal/services"
	"github.com/UNI-F-2025/campus-service/internal/utils"
	"github.com/UNI-F-2025/campus-service/internal/validator"
	"github.com/UNI-F-2025/campus-service/pkg"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Structured logger
	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	slog.SetDefault(slogger)
	logger := utils.NewSlogLogger(slogger)

	slogger.Info("Starting campus service",
		"environment", cfg.Environment,
		"port", cfg.Port)

	// Database
	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		slogger.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}

	// Redis is optional; without it the cache layer is disabled
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = pkg.NewRedisClient(cfg)
		if err != nil {
			slogger.Error("Failed to connect to Redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
	} else {
		slogger.Warn("REDIS_URL not set, caching disabled")
	}

	// Repository layer
	repoManager := postgres.NewRepositoryManager(postgres.RepositoryConfig{
		DB:          db,
		RedisClient: redisClient,
	})

	if err := repoManager.Initialize(); err != nil {
		slogger.Error("Failed to initialize repository manager", "error", err)
		os.Exit(1)
	}

	// Event publisher; Kafka when brokers are configured, noop otherwise
	var publisher events.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher, err = events.NewKafkaEventPublisher(cfg.KafkaBrokers, slogger)
		if err != nil {
			slogger.Error("Failed to create Kafka publisher", "error", err)
			os.Exit(1)
		}
	} else {
		slogger.Warn("KAFKA_BROKERS not set, event publishing disabled")
		publisher = events.NewNoopEventPublisher()
	}

	// Service layer
	ctx := context.Background()
	v := validator.New()
	serviceManager := services.NewServiceManager(db, repoManager.GetRepository(), slogger, v, services.ServiceManagerConfig{
		JWTSecret:      cfg.JWTSecret,
		TokenTTL:       cfg.TokenTTL,
		EventPublisher: publisher,
		DefaultTimeout: 30 * time.Second,
	})
	if err := serviceManager.Initialize(ctx); err != nil {
		slogger.Error("Failed to initialize service manager", "error", err)
		os.Exit(1)
	}

	// HTTP layer
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	handlers.SetupMiddleware(router, logger)
	router.Use(handlers.RateLimitMiddleware(cfg.RateLimitPerMinute, cfg.RateLimitBurst))

	handlerManager := handlers.NewHandlerManager(serviceManager, cfg.JWTSecret, logger)
	handlerManager.SetupRoutes(router)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slogger.Info("HTTP server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slogger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slogger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slogger.Error("Server shutdown failed", "error", err)
	}

	if err := serviceManager.Shutdown(shutdownCtx); err != nil {
		slogger.Error("Service manager shutdown failed", "error", err)
	}

	if err := repoManager.Shutdown(shutdownCtx); err != nil {
		slogger.Error("Repository manager shutdown failed", "error", err)
	}

	slogger.Info("Shutdown complete")
}

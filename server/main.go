package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"standplanner/api/routes"
	"standplanner/internal/notifications"
	"standplanner/internal/shared/config"
	"standplanner/internal/shared/database"
	"standplanner/internal/shared/middleware"
	"standplanner/internal/shared/validation"
	"standplanner/pkg/logger"
	"standplanner/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()

	// Set Gin mode before the logger picks text or JSON output
	gin.SetMode(cfg.GinMode)
	logger.SetDefault(logger.New())
	appLogger := logger.GetDefault()

	if envErr != nil {
		if cfg.IsProduction() || os.Getenv("DOCKER_CONTAINER") == "true" {
			appLogger.Info("Production environment: using container environment variables")
		} else {
			appLogger.Info("No .env file found, using system environment variables")
		}
	} else {
		appLogger.Info("Development environment: loaded .env file")
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		appLogger.Error("failed to connect", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	if err := validation.Register(); err != nil {
		appLogger.Error("failed to register validators", slog.Any("error", err))
		os.Exit(1)
	}

	var rateLimiter *ratelimit.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = ratelimit.NewRateLimiter(db.GetRedis(), &ratelimit.Config{
			Enabled:         cfg.RateLimit.Enabled,
			WindowDuration:  cfg.RateLimit.WindowDuration,
			DefaultRequests: cfg.RateLimit.DefaultRequests,
			EditorRequests:  cfg.RateLimit.EditorRequests,
			HealthRequests:  cfg.RateLimit.HealthRequests,
			WhitelistedIPs:  cfg.RateLimit.WhitelistedIPs,
		})
		appLogger.Info("Rate limiter initialized",
			slog.Duration("window", cfg.RateLimit.WindowDuration),
			slog.Int("default_requests", cfg.RateLimit.DefaultRequests),
			slog.Int("editor_requests", cfg.RateLimit.EditorRequests),
			slog.Bool("redis_backed", db.GetRedis() != nil),
		)
	} else {
		appLogger.Info("Rate limiting disabled")
	}

	backgroundCtx, backgroundCancel := context.WithCancel(context.Background())
	defer backgroundCancel()

	var publisher notifications.Publisher
	notificationService, err := notifications.NewService(cfg)
	if err != nil {
		appLogger.Error("Failed to initialize notification service", slog.Any("error", err))
		appLogger.Info("Continuing without plan events")
	} else {
		publisher = notificationService.Publisher()
		notificationService.Start(backgroundCtx)
		defer func() {
			appLogger.Info("Stopping notification service...")
			if err := notificationService.Stop(); err != nil {
				appLogger.Error("Error stopping notification service", slog.Any("error", err))
			}
		}()
	}

	appRouter := routes.NewRouter(cfg, db, publisher)
	go appRouter.Sessions().RunPruner(backgroundCtx, cfg.Layout.SessionPruneInterval, cfg.Layout.SessionIdleTimeout)

	srv := &http.Server{
		Addr:           cfg.GetServerAddress(),
		Handler:        setupEngine(appRouter, rateLimiter),
		ReadTimeout:    cfg.ReadTimeout,
		WriteTimeout:   cfg.WriteTimeout,
		IdleTimeout:    cfg.IdleTimeout,
		MaxHeaderBytes: cfg.MaxHeaderBytes,
	}

	go func() {
		appLogger.Info("Server running",
			slog.String("address", cfg.GetServerAddress()),
			slog.String("health_check", fmt.Sprintf("http://localhost:%s/health", cfg.Port)),
			slog.String("editor", fmt.Sprintf("http://localhost:%s%s/events/{eventId}/layout", cfg.Port, cfg.GetAPIBasePath())),
			slog.String("version", Version),
			slog.String("commit", GitCommit),
			slog.String("built", BuildTime),
			slog.Bool("kafka", cfg.Kafka.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Server failed", slog.Any("error", err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Forced shutdown", slog.Any("error", err))
	}
	if n := appRouter.Sessions().Len(); n > 0 {
		appLogger.Warn("Open editing sessions dropped on shutdown", slog.Int("sessions", n))
	}

	appLogger.Info("Server exited gracefully")
}

func setupEngine(appRouter *routes.Router, rateLimiter *ratelimit.RateLimiter) *gin.Engine {
	engine := gin.New()
	appLogger := logger.GetDefault()

	engine.Use(middleware.RequestID(), middleware.RequestLogger(appLogger), gin.Recovery())
	engine.Use(middleware.CORS())

	if rateLimiter != nil {
		engine.Use(ratelimit.Middleware(rateLimiter))
	}

	appRouter.SetupRoutes(engine)
	return engine
}

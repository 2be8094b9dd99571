package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vitatrack/backend/config"
	"github.com/vitatrack/backend/internal/api"
	"github.com/vitatrack/backend/internal/database"
	"github.com/vitatrack/backend/internal/router"
	"github.com/vitatrack/backend/internal/server"
	"github.com/vitatrack/backend/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	if err := database.RunMigrations(db, "migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Cache and avatar storage are optional: the API degrades to
	// uncached reads and disabled uploads when they are unavailable.
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Redis unavailable, dashboard caching disabled: %v", err)
		redisClient = nil
	}

	var imageService *service.ImageService
	if s3Config, err := config.NewS3Config(context.Background()); err != nil {
		log.Printf("S3 unavailable, avatar uploads disabled: %v", err)
	} else {
		imageService = service.NewImageService(s3Config)
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	foodLogService := service.NewFoodLogService(db)
	workoutService := service.NewWorkoutService(db)
	goalService := service.NewGoalService(db)
	statsService := service.NewStatsService(db)
	reconcileService := service.NewReconcileService(db)
	llmService := service.NewLLMService(cfg)

	engine := router.SetupRouter(
		api.NewAuthHandler(authService, imageService),
		api.NewFoodLogHandler(foodLogService, statsService, llmService),
		api.NewWorkoutHandler(workoutService, statsService),
		api.NewGoalHandler(goalService, statsService, reconcileService),
		api.NewDashboardHandler(statsService, redisClient),
		api.NewLLMHandler(llmService),
		authService,
	)

	srv := server.New(engine, net.JoinHostPort(cfg.ServerHost, cfg.ServerPort))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis client: %v", err)
		}
	}
}

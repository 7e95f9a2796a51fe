package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"hrm-api/config"
	_ "hrm-api/docs"
	"hrm-api/internal/app"
	"hrm-api/internal/database"
	"hrm-api/internal/logging"
	"hrm-api/internal/seed"
	"hrm-api/internal/server"

	"github.com/gin-gonic/gin"
)

// @title           HRM API
// @version         1.0
// @description     Candidate tracking, interview scheduling and review API.

// @host      localhost:8080
// @BasePath  /api
// @schemes   http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := run(); err != nil {
		slog.Error("application stopped with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Init(os.Stdout, cfg.Log.SlogLevel())
	if cfg.Log.SlogLevel() > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewConnectionPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer dbPool.Close()

	if err := database.Migrate(ctx, dbPool); err != nil {
		return err
	}

	redisClient, err := database.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	application, err := app.New(cfg, dbPool, redisClient)
	if err != nil {
		return err
	}

	if cfg.Seed.File != "" {
		f, err := seed.Load(cfg.Seed.File)
		if err != nil {
			return err
		}
		if _, err := seed.Apply(ctx, f, application.SeedRepos); err != nil {
			return err
		}
	}

	srv := server.NewServer(application)
	if err := srv.Run(ctx); err != nil {
		return err
	}
	slog.Info("application gracefully stopped")
	return nil
}

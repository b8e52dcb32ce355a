package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/lexitrain/lexitrain/internal/config"
	"github.com/lexitrain/lexitrain/internal/repository"
	"github.com/lexitrain/lexitrain/internal/server"
	"github.com/lexitrain/lexitrain/internal/service"
	"github.com/lexitrain/lexitrain/internal/storage/cache"
	"github.com/lexitrain/lexitrain/internal/storage/db"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("failed to load .env: %v", err)
	}

	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer logger.Sync()

	database, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Fatal("failed init db", zap.Error(err))
	}
	defer database.Close()

	repos := repository.NewRepository(database, cfg.DB.Driver)
	locks := cache.NewProgressLocks()
	services := service.InitServices(repos, locks, logger)

	srv := server.NewServer(cfg.HTTP, services, logger)

	// listen failures come back here so the deferred cleanup still runs
	serverErrs := make(chan error, 1)
	go func() {
		serverErrs <- srv.Start()
	}()

	logger.Info("server started", zap.String("port", cfg.HTTP.Port), zap.String("env", cfg.Env))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrs:
		if err != nil && err != http.ErrServerClosed {
			logger.Error("server stopped", zap.Error(err))
		}
		return
	case <-sigChan:
	}

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.App.Timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("failed to shut down gracefully", zap.Error(err))
	}
}

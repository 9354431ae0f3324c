// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"valentine_week/internal/config"
	"valentine_week/internal/handlers"
	"valentine_week/internal/logging"
	"valentine_week/internal/metrics"
	"valentine_week/internal/repository"
	"valentine_week/internal/service"
)

func main() {
	// 設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	// .env があれば環境変数に読み込む (なくてもよい)
	if err := godotenv.Load(); err != nil {
		tempLogger.Debug("No .env file loaded", slog.Any("error", err))
	}

	log.Println("Log Config Loading...")
	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	appEnv := os.Getenv("APP_ENV")
	logger := logging.New(os.Stderr, config.Cfg.Log.Level, appEnv)
	tempLogger.Info("Logger configured", slog.String("APP_ENV", appEnv), slog.String("level", config.Cfg.Log.Level))
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	// 1. ストアに接続 (GORM 系はマイグレーションも実行)
	ctx := context.Background()
	backend, err := repository.Open(ctx, config.Cfg.Database, logger)
	if err != nil {
		slog.Error("Error initializing store", slog.String("driver", config.Cfg.Database.Driver), slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := backend.Close(closeCtx); err != nil {
			slog.Error("Error closing store connection", slog.Any("error", err))
		} else {
			slog.Info("Store connection closed.")
		}
	}()

	// 2. Dependency Injection
	recorder := metrics.New(config.Cfg.Metrics)
	var metricsHandler http.Handler
	if p, ok := recorder.(*metrics.PrometheusRecorder); ok {
		metricsHandler = p.Handler()
	}

	progressService := service.NewProgressService(backend.Progress, &config.Cfg, recorder)
	statusService := service.NewStatusService(backend.Status, &config.Cfg)

	// 3. Setup Router
	r := handlers.NewRouter(&config.Cfg, logger, handlers.RouterDeps{
		ProgressService: progressService,
		StatusService:   statusService,
		Pinger:          backend,
		Recorder:        recorder,
		MetricsHandler:  metricsHandler,
	})

	// 4. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port), slog.String("driver", backend.Driver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-serverErr:
		slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
		return
	}
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}

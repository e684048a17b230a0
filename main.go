package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sqlgen/ai"
	"sqlgen/config"
	"sqlgen/dialect"
	"sqlgen/handlers"
	"sqlgen/observability"
	"sqlgen/service"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.Log, os.Stdout)
	gin.SetMode(cfg.GinMode)

	generator, err := ai.New(cfg.AI)
	if err != nil {
		logger.Error("failed to initialize AI client", slog.Any("error", err))
		os.Exit(1)
	}

	sqlService := service.NewSQLService(dialect.Default(), generator, logger)
	h := handlers.New(sqlService, logger)
	r := handlers.NewRouter(cfg, h)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running",
			slog.String("url", "http://localhost:"+cfg.Port),
			slog.String("provider", cfg.AI.Provider),
			slog.String("model", cfg.AI.ModelName),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", slog.Any("error", err))
	}
}

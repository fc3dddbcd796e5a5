package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/velorashop/backoffice/internal/api"
	"github.com/velorashop/backoffice/internal/config"
	"github.com/velorashop/backoffice/internal/pkg/clock"
	"github.com/velorashop/backoffice/internal/service"
	"github.com/velorashop/backoffice/internal/store"
	"github.com/velorashop/backoffice/internal/storeapi"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	logger.Info("Starting back office server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)

	// Initialize storefront client and entity store
	client := storeapi.NewClient(cfg.Storefront.BaseURL, cfg.Storefront.APIKey, logger)
	entities := store.New(client, logger)

	// Initialize router
	router := api.NewRouter(cfg, entities, client, clock.RealClock{}, logger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Store refresh: run once on startup, then on the configured interval
	refreshCtx, stopRefresh := context.WithCancel(context.Background())
	go service.RunRefreshLoop(refreshCtx, entities, cfg.Refresh.Interval, logger)
	logger.Info("Store refresh loop started", zap.Duration("interval", cfg.Refresh.Interval))

	logger.Info("Server started successfully", zap.String("address", srv.Addr))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stopRefresh()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

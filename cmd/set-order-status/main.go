package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/velorashop/backoffice/internal/config"
	"github.com/velorashop/backoffice/internal/domain"
	"github.com/velorashop/backoffice/internal/service"
	"github.com/velorashop/backoffice/internal/store"
	"github.com/velorashop/backoffice/internal/storeapi"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: set-order-status <order-id> <status>")
		fmt.Fprintln(os.Stderr, "Statuses: pending, processing, shipped, delivered, cancelled")
		os.Exit(1)
	}
	orderID := os.Args[1]
	status := domain.OrderStatus(os.Args[2])

	// Load .env if present
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	client := storeapi.NewClient(cfg.Storefront.BaseURL, cfg.Storefront.APIKey, logger)
	entities := store.New(client, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := entities.Refresh(ctx, domain.KindOrders); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch orders: %v\n", err)
		os.Exit(1)
	}

	orderService := service.NewOrderService(entities, client, logger)
	updated, err := orderService.UpdateStatus(ctx, orderID, status)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to update status: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Order %s is now %s\n", updated.OrderID, updated.OrderStatus)
}

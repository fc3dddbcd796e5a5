package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/velorashop/backoffice/internal/config"
	"github.com/velorashop/backoffice/internal/metrics"
	"github.com/velorashop/backoffice/internal/storeapi"
)

func main() {
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

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	orders, err := client.FetchOrders(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch orders: %v\n", err)
		os.Exit(1)
	}
	products, err := client.FetchProducts(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch products: %v\n", err)
		os.Exit(1)
	}

	snap := metrics.Derive(orders, products, time.Now().UTC())

	fmt.Println("📊 Dashboard metrics:")
	fmt.Printf("  Total sales:      %s (%+d%%)\n", snap.TotalSales, snap.SalesChangePct)
	fmt.Printf("  Total orders:     %d (%+d%%)\n", snap.TotalOrders, snap.OrdersChangePct)
	fmt.Printf("  Active products:  %d (%+d%%)\n", snap.ActiveProducts, snap.ProductsChangePct)
	fmt.Printf("  Total customers:  %d (%+d%%)\n", snap.TotalCustomers, snap.CustomersChangePct)

	if len(snap.LowStock) == 0 {
		fmt.Println("✅ No low-stock products")
		return
	}
	fmt.Printf("⚠️  %d low-stock product(s):\n", len(snap.LowStock))
	for _, p := range snap.LowStock {
		fmt.Printf("  %-40s qty=%d\n", p.Title, p.AvailableQuantity)
	}
}

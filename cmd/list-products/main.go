package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/velorashop/backoffice/internal/catalog"
	"github.com/velorashop/backoffice/internal/config"
	"github.com/velorashop/backoffice/internal/storeapi"
)

func main() {
	search := flag.String("search", "", "title substring filter")
	colors := flag.String("colors", "", "comma-separated colors")
	materials := flag.String("materials", "", "comma-separated materials")
	occasions := flag.String("occasions", "", "comma-separated occasion tags")
	flag.Parse()

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

	products, err := client.FetchProducts(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to fetch products: %v\n", err)
		os.Exit(1)
	}

	spec := catalog.Spec{
		SearchText: *search,
		Colors:     splitCSV(*colors),
		Materials:  splitCSV(*materials),
		Occasions:  splitCSV(*occasions),
	}
	filtered := catalog.Filter(products, spec)

	fmt.Printf("📋 %d of %d product(s) match:\n", len(filtered), len(products))
	for _, p := range filtered {
		fmt.Printf("  %-24s %-40s %s  qty=%d  [%s/%s %v]\n",
			p.ID, p.Title, p.SellingPrice, p.AvailableQuantity,
			p.Filter.Material, p.Filter.Color, p.Filter.Occasion)
	}
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

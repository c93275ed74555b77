package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/velstore/storefront/internal/cart"
	"github.com/velstore/storefront/internal/catalog"
	"github.com/velstore/storefront/internal/config"
	"github.com/velstore/storefront/internal/controller"
	"github.com/velstore/storefront/internal/graphql"
	"github.com/velstore/storefront/internal/order"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: go run cmd/quickshop/main.go <category> [productID]")
		fmt.Println("Example: go run cmd/quickshop/main.go clothes")
		fmt.Println("Example: go run cmd/quickshop/main.go all huarache-x-stussy-le")
		os.Exit(1)
	}

	category := os.Args[1]

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer cancel()

	client := graphql.NewClient(cfg.API.URL, cfg.API.Timeout, logger)
	cat := catalog.NewClient(client, logger)

	listing := controller.NewListing(cat, logger)
	listing.Load(ctx, category)

	visible := listing.Visible()
	fmt.Printf("%s: %d products\n\n", listing.Category(), len(visible))
	for _, p := range visible {
		stock := "in stock"
		if !p.InStock {
			stock = "OUT OF STOCK"
		}
		fmt.Printf("  %-28s %-24s $%.2f  %s\n", p.ID, p.Name, p.Price, stock)
	}

	if len(os.Args) < 3 {
		return
	}
	productID := os.Args[2]

	bag := cart.New()
	count, err := listing.QuickAdd(productID, bag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Quick add failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("\nAdded %s with default options (%d item(s), total $%.2f)\n", productID, count, bag.Total())

	orders := order.NewService(client, cfg.NoticeTTL, logger)
	receipt, err := orders.Place(ctx, bag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to place order: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Order placed: %s\n", receipt.ID)
}

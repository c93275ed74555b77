package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/velstore/storefront/internal/api"
	"github.com/velstore/storefront/internal/cart"
	"github.com/velstore/storefront/internal/catalog"
	"github.com/velstore/storefront/internal/config"
	"github.com/velstore/storefront/internal/graphql"
	"github.com/velstore/storefront/internal/order"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	client := graphql.NewClient(cfg.API.URL, cfg.API.Timeout, logger)
	cat := catalog.NewClient(client, logger)
	sessions := cart.NewSessions()
	orders := order.NewService(client, cfg.NoticeTTL, logger)

	router := api.NewRouter(cfg, cat, sessions, orders, logger)

	logger.Info("storefront listening",
		zap.String("addr", cfg.Addr()),
		zap.String("api_url", cfg.API.URL),
		zap.String("environment", cfg.Environment),
	)
	if err := router.Run(cfg.Addr()); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

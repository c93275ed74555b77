package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velstore/storefront/internal/api/handlers"
	"github.com/velstore/storefront/internal/api/middleware"
	"github.com/velstore/storefront/internal/cart"
	"github.com/velstore/storefront/internal/catalog"
	"github.com/velstore/storefront/internal/config"
	"github.com/velstore/storefront/internal/order"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, cat *catalog.Client, sessions *cart.Sessions, orders *order.Service, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))
	router.Use(cors.New(corsConfig(cfg)))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	v1.Use(middleware.Session(sessions))
	{
		v1.GET("/categories", handlers.HandleListCategories(cat))
		v1.GET("/products", handlers.HandleListProducts(cat, logger))
		v1.GET("/products/:id", handlers.HandleGetProduct(cat, logger))

		v1.GET("/cart", handlers.HandleGetCart())
		v1.POST("/cart/items", handlers.HandleAddItem(cat, logger))
		v1.POST("/cart/quick-add", handlers.HandleQuickAdd(cat, logger))
		v1.POST("/cart/items/:key/increment", handlers.HandleIncrementItem())
		v1.POST("/cart/items/:key/decrement", handlers.HandleDecrementItem())

		v1.POST("/orders", handlers.HandlePlaceOrder(orders, logger))
	}

	return router
}

// corsConfig builds the CORS policy. The session cookie needs
// credentials, which the wildcard origin cannot carry, so credentials
// are enabled only for an explicit origin list.
func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.Config{
		AllowOrigins: cfg.CORS.AllowOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}
	wildcard := false
	for _, origin := range cfg.CORS.AllowOrigins {
		if origin == "*" {
			wildcard = true
		}
	}
	corsCfg.AllowCredentials = !wildcard
	return corsCfg
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}

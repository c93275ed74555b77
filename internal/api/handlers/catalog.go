package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velstore/storefront/internal/catalog"
	"github.com/velstore/storefront/internal/controller"
	"github.com/velstore/storefront/internal/domain"
)

// ProductDetailResponse is the detail-page payload: the product with
// its duplicate attribute entries merged and the default image
// preselected.
type ProductDetailResponse struct {
	Product    *domain.Product       `json:"product"`
	Attributes []domain.AttributeSet `json:"attributes"`
	Image      *domain.Image         `json:"image,omitempty"`
}

// HandleListCategories handles GET /v1/categories
func HandleListCategories(cat *catalog.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"categories": cat.Categories(c.Request.Context()),
		})
	}
}

// HandleListProducts handles GET /v1/products?category=
func HandleListProducts(cat *catalog.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		listing := controller.NewListing(cat, logger)
		listing.Load(c.Request.Context(), c.Query("category"))

		c.JSON(http.StatusOK, gin.H{
			"category": listing.Category(),
			"products": listing.Visible(),
		})
	}
}

// HandleGetProduct handles GET /v1/products/:id
func HandleGetProduct(cat *catalog.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail := controller.NewDetail(cat, logger)
		if err := detail.Load(c.Request.Context(), c.Param("id")); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "failed to fetch product details"})
			return
		}

		c.JSON(http.StatusOK, ProductDetailResponse{
			Product:    detail.Product(),
			Attributes: detail.Attributes(),
			Image:      detail.SelectedImage(),
		})
	}
}

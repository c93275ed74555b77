package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velstore/storefront/internal/api/middleware"
	"github.com/velstore/storefront/internal/cart"
	"github.com/velstore/storefront/internal/catalog"
	"github.com/velstore/storefront/internal/controller"
	"github.com/velstore/storefront/internal/domain"
)

// AddItemRequest is the full add-to-cart payload from the detail page.
type AddItemRequest struct {
	ProductID  string        `json:"product_id" binding:"required"`
	Options    []OptionInput `json:"options" binding:"required,min=1,dive"`
	ImageIndex *int          `json:"image_index,omitempty"`
}

type OptionInput struct {
	Name  string `json:"name" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// QuickAddRequest adds a product with its default options.
type QuickAddRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// LineItemView is one cart line in API responses. Quick-added lines
// additionally carry the product's grouped attributes so the overlay
// can render the option sets.
type LineItemView struct {
	Key        string                  `json:"key"`
	ProductID  string                  `json:"product_id"`
	Name       string                  `json:"name"`
	Price      float64                 `json:"price"`
	Quantity   int                     `json:"quantity"`
	QuickAdd   bool                    `json:"quick_add"`
	Options    []domain.SelectedOption `json:"options"`
	Image      *domain.Image           `json:"image,omitempty"`
	Attributes []domain.AttributeSet   `json:"attributes,omitempty"`
}

// CartView is the cart payload: Count is the sum of quantities, Lines
// the number of distinct line items.
type CartView struct {
	Items []LineItemView `json:"items"`
	Count int            `json:"count"`
	Lines int            `json:"lines"`
	Total float64        `json:"total"`
}

func newCartView(c *cart.Cart) CartView {
	items := c.Items()
	views := make([]LineItemView, 0, len(items))
	for i := range items {
		li := items[i]
		view := LineItemView{
			Key:       li.Key(),
			ProductID: li.Product.ID,
			Name:      li.Product.Name,
			Price:     li.Product.Price,
			Quantity:  li.Quantity,
			QuickAdd:  li.QuickAdd,
			Options:   li.Options,
			Image:     li.Image,
		}
		if li.QuickAdd {
			view.Attributes = li.Product.AttributeSets()
		}
		views = append(views, view)
	}
	return CartView{
		Items: views,
		Count: c.Count(),
		Lines: c.Lines(),
		Total: c.Total(),
	}
}

// HandleGetCart handles GET /v1/cart
func HandleGetCart() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionCart, ok := middleware.GetCartFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no cart session"})
			return
		}
		c.JSON(http.StatusOK, newCartView(sessionCart))
	}
}

// HandleAddItem handles POST /v1/cart/items. The product is re-fetched
// and the selection replayed through the detail controller, so the
// add-to-cart guards hold even for callers that bypass the UI.
func HandleAddItem(cat *catalog.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionCart, ok := middleware.GetCartFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no cart session"})
			return
		}

		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		detail := controller.NewDetail(cat, logger)
		if err := detail.Load(c.Request.Context(), req.ProductID); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		for _, opt := range req.Options {
			detail.SelectOption(opt.Name, opt.Value)
		}
		if req.ImageIndex != nil {
			detail.SelectImage(*req.ImageIndex)
		}

		count, err := detail.AddToCart(sessionCart)
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"count": count,
			"cart":  newCartView(sessionCart),
		})
	}
}

// HandleQuickAdd handles POST /v1/cart/quick-add
func HandleQuickAdd(cat *catalog.Client, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionCart, ok := middleware.GetCartFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no cart session"})
			return
		}

		var req QuickAddRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		listing := controller.NewListing(cat, logger)
		listing.Load(c.Request.Context(), "")

		count, err := listing.QuickAdd(req.ProductID, sessionCart)
		if err != nil {
			switch {
			case errors.Is(err, controller.ErrUnknownProduct):
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			case errors.Is(err, controller.ErrNoAttributes), errors.Is(err, controller.ErrOutOfStock):
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			default:
				logger.Error("quick add failed", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			}
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"count": count,
			"cart":  newCartView(sessionCart),
		})
	}
}

// HandleIncrementItem handles POST /v1/cart/items/:key/increment
func HandleIncrementItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionCart, ok := middleware.GetCartFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no cart session"})
			return
		}

		count := sessionCart.Increment(c.Param("key"))
		c.JSON(http.StatusOK, gin.H{
			"count": count,
			"cart":  newCartView(sessionCart),
		})
	}
}

// HandleDecrementItem handles POST /v1/cart/items/:key/decrement
func HandleDecrementItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionCart, ok := middleware.GetCartFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no cart session"})
			return
		}

		count := sessionCart.Decrement(c.Param("key"))
		c.JSON(http.StatusOK, gin.H{
			"count": count,
			"cart":  newCartView(sessionCart),
		})
	}
}

package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/velstore/storefront/internal/cart"
	"github.com/velstore/storefront/internal/domain"
)

// AllCategories is the pseudo-category that disables filtering.
const AllCategories = "All"

var (
	ErrNoAttributes   = errors.New("product has no attributes")
	ErrUnknownProduct = errors.New("unknown product")
)

// ProductLister fetches the full product listing.
type ProductLister interface {
	Products(ctx context.Context) []domain.Product
}

// Listing drives the product listing page: one fetch per category
// change, client-side category filtering, and quick add with default
// options.
type Listing struct {
	lister ProductLister
	logger *zap.Logger

	products []domain.Product
	category string
}

// NewListing creates a listing controller.
func NewListing(lister ProductLister, logger *zap.Logger) *Listing {
	return &Listing{
		lister: lister,
		logger: logger,
	}
}

// Load fetches all products and records the active category. A blank
// category means "All". Fetch failures degrade to an empty listing.
func (l *Listing) Load(ctx context.Context, category string) {
	l.products = l.lister.Products(ctx)
	if category == "" {
		category = AllCategories
	}
	l.category = category
}

// Category returns the active category name.
func (l *Listing) Category() string {
	return l.category
}

// Visible returns the products matching the active category. The match
// is case-insensitive; "All" passes everything. Products without a
// category never match a specific category.
func (l *Listing) Visible() []domain.Product {
	if strings.EqualFold(l.category, AllCategories) {
		return l.products
	}
	visible := make([]domain.Product, 0, len(l.products))
	for _, p := range l.products {
		if p.Category != nil && strings.EqualFold(p.Category.Name, l.category) {
			visible = append(visible, p)
		}
	}
	return visible
}

// QuickAdd adds a product to the cart with the default selection: the
// first declared value per attribute. A product with no attributes
// cannot be quick-added. Returns the new item count.
func (l *Listing) QuickAdd(productID string, c *cart.Cart) (int, error) {
	for i := range l.products {
		p := l.products[i]
		if p.ID != productID {
			continue
		}
		if !p.InStock {
			return 0, fmt.Errorf("%w: %s", ErrOutOfStock, productID)
		}
		sets := p.AttributeSets()
		if len(sets) == 0 {
			l.logger.Warn("quick add rejected, product has no attributes",
				zap.String("product_id", productID),
			)
			return 0, fmt.Errorf("%w: %s", ErrNoAttributes, productID)
		}
		return c.Add(p, domain.DefaultSelection(sets), true, nil), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownProduct, productID)
}

package controller

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/velstore/storefront/internal/cart"
	"github.com/velstore/storefront/internal/domain"
)

// State is the detail controller's lifecycle state.
type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

var (
	ErrNotReady    = errors.New("product not loaded")
	ErrNoSelection = errors.New("no option selected")
	ErrOutOfStock  = errors.New("product out of stock")
)

// ProductFetcher fetches one product by id.
type ProductFetcher interface {
	ProductByID(ctx context.Context, productID string) (*domain.Product, error)
}

// Detail drives one product detail session: it loads a product, tracks
// the option selection and the image carousel, and hands completed
// selections to a cart.
type Detail struct {
	fetcher ProductFetcher
	logger  *zap.Logger

	state      State
	loadErr    error
	product    *domain.Product
	attributes []domain.AttributeSet
	selection  []domain.SelectedOption
	imageIndex int
}

// NewDetail creates a detail controller in the loading state.
func NewDetail(fetcher ProductFetcher, logger *zap.Logger) *Detail {
	return &Detail{
		fetcher: fetcher,
		logger:  logger,
		state:   StateLoading,
	}
}

// Load fetches the product and resets selection state. Duplicate
// attribute entries sharing a name are merged into one set; the first
// image becomes the selected image.
func (d *Detail) Load(ctx context.Context, productID string) error {
	d.state = StateLoading
	d.loadErr = nil

	product, err := d.fetcher.ProductByID(ctx, productID)
	if err != nil {
		d.state = StateError
		d.loadErr = err
		d.product = nil
		d.attributes = nil
		d.selection = nil
		d.logger.Error("product fetch failed",
			zap.String("product_id", productID),
			zap.Error(err),
		)
		return err
	}

	d.product = product
	d.attributes = domain.GroupAttributes(product.Attributes)
	d.selection = nil
	d.imageIndex = 0
	d.state = StateReady
	return nil
}

// State returns the current lifecycle state.
func (d *Detail) State() State {
	return d.state
}

// Err returns the load error, if any.
func (d *Detail) Err() error {
	return d.loadErr
}

// Product returns the loaded product, or nil before a successful load.
func (d *Detail) Product() *domain.Product {
	return d.product
}

// Attributes returns the product's merged attribute sets.
func (d *Detail) Attributes() []domain.AttributeSet {
	return d.attributes
}

// Selection returns the current option selection.
func (d *Detail) Selection() []domain.SelectedOption {
	return d.selection
}

// SelectOption records the chosen value for an attribute, overwriting
// any prior value for the same attribute name.
func (d *Detail) SelectOption(name, value string) {
	if d.state != StateReady {
		return
	}
	d.selection = domain.SetOption(d.selection, name, value)
}

// SelectedImage returns the currently selected image, or nil when the
// product has none.
func (d *Detail) SelectedImage() *domain.Image {
	if d.state != StateReady || len(d.product.Images) == 0 {
		return nil
	}
	return &d.product.Images[d.imageIndex]
}

// NextImage advances the carousel, wrapping past the last image.
func (d *Detail) NextImage() {
	if d.state != StateReady || len(d.product.Images) == 0 {
		return
	}
	d.imageIndex = (d.imageIndex + 1) % len(d.product.Images)
}

// PrevImage steps the carousel back, wrapping before the first image.
func (d *Detail) PrevImage() {
	if d.state != StateReady || len(d.product.Images) == 0 {
		return
	}
	n := len(d.product.Images)
	d.imageIndex = (d.imageIndex - 1 + n) % n
}

// SelectImage jumps the carousel to an index; out-of-range indexes are
// ignored.
func (d *Detail) SelectImage(i int) {
	if d.state != StateReady || i < 0 || i >= len(d.product.Images) {
		return
	}
	d.imageIndex = i
}

// CanAddToCart reports whether add-to-cart should be enabled: product
// loaded, in stock, and at least one option selected.
func (d *Detail) CanAddToCart() bool {
	return d.state == StateReady && d.product.InStock && len(d.selection) > 0
}

// AddToCart forwards the full selection and the chosen image to the
// cart. The guard conditions are validated here as well, since a
// disabled button is not a boundary. Returns the new item count.
func (d *Detail) AddToCart(c *cart.Cart) (int, error) {
	if d.state != StateReady {
		return 0, ErrNotReady
	}
	if !d.product.InStock {
		return 0, ErrOutOfStock
	}
	if len(d.selection) == 0 {
		return 0, ErrNoSelection
	}
	return c.Add(*d.product, d.selection, false, d.SelectedImage()), nil
}

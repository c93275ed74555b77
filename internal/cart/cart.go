package cart

import (
	"sync"

	"github.com/velstore/storefront/internal/domain"
)

// LineItem is one cart entry: a product snapshot, its selected options,
// and a quantity. QuickAdd marks lines added from the listing page with
// default options rather than a full detail-page selection.
type LineItem struct {
	Product  domain.Product          `json:"product"`
	Options  []domain.SelectedOption `json:"options"`
	Quantity int                     `json:"quantity"`
	QuickAdd bool                    `json:"quick_add"`
	Image    *domain.Image           `json:"image,omitempty"`
}

// Key returns the line item's identity key.
func (li *LineItem) Key() string {
	return IdentityKey(li.Product.ID, li.Options)
}

// Subtotal is price times quantity. A product with no price counts as
// zero rather than failing.
func (li *LineItem) Subtotal() float64 {
	return li.Product.Price * float64(li.Quantity)
}

// Cart holds the line items for one shopping session. Line order is
// insertion order and only matters for display. All methods are safe
// for concurrent use.
type Cart struct {
	mu    sync.Mutex
	items []LineItem
}

func New() *Cart {
	return &Cart{}
}

// Add merges into the existing line item with the same identity key,
// or appends a new line with quantity 1. Returns the new item count
// (sum of quantities).
func (c *Cart) Add(p domain.Product, opts []domain.SelectedOption, quickAdd bool, image *domain.Image) int {
	key := IdentityKey(p.ID, opts)

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Key() == key {
			c.items[i].Quantity++
			return c.countLocked()
		}
	}

	options := make([]domain.SelectedOption, len(opts))
	copy(options, opts)
	c.items = append(c.items, LineItem{
		Product:  p,
		Options:  options,
		Quantity: 1,
		QuickAdd: quickAdd,
		Image:    image,
	})
	return c.countLocked()
}

// Increment raises the quantity of the line item with the given key by
// one. An unknown key is a no-op. Returns the new item count.
func (c *Cart) Increment(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Key() == key {
			c.items[i].Quantity++
			break
		}
	}
	return c.countLocked()
}

// Decrement lowers the quantity of the line item with the given key by
// one, removing the line when it reaches zero. An unknown key is a
// no-op. Returns the new item count.
func (c *Cart) Decrement(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Key() != key {
			continue
		}
		c.items[i].Quantity--
		if c.items[i].Quantity < 1 {
			c.items = append(c.items[:i], c.items[i+1:]...)
		}
		break
	}
	return c.countLocked()
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// Count is the total item count: the sum of quantities across all line
// items, not the number of distinct lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.countLocked()
}

// Lines is the number of distinct line items, used for the bag header.
func (c *Cart) Lines() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Total is the sum of price times quantity across all line items.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for i := range c.items {
		total += c.items[i].Subtotal()
	}
	return total
}

// Empty reports whether the cart has no line items.
func (c *Cart) Empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}

// Clear removes every line item.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

func (c *Cart) countLocked() int {
	var count int
	for i := range c.items {
		count += c.items[i].Quantity
	}
	return count
}

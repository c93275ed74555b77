package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/velstore/storefront/internal/cart"
	"github.com/velstore/storefront/internal/graphql"
)

// InsertOrderMutation places an order with the remote API
const InsertOrderMutation = `
mutation InsertOrder($orderProducts: [ID!]!, $totalPrice: Float!) {
  insertOrder(orderProducts: $orderProducts, totalPrice: $totalPrice)
}
`

var (
	ErrEmptyCart = errors.New("cart is empty")
	ErrInFlight  = errors.New("order submission already in flight")
)

// Executor runs GraphQL operations against the storefront API.
type Executor interface {
	Execute(ctx context.Context, query string, variables map[string]interface{}) (*graphql.Response, error)
}

// Receipt is the result of a placed order.
type Receipt struct {
	ID string `json:"id"`
}

// Service submits carts as orders. At most one submission per cart is
// in flight at a time; a second attempt while one is pending is
// rejected rather than queued.
type Service struct {
	exec   Executor
	logger *zap.Logger
	notice *Notice

	mu       sync.Mutex
	inFlight map[*cart.Cart]struct{}
}

// NewService creates a new order service
func NewService(exec Executor, noticeTTL time.Duration, logger *zap.Logger) *Service {
	return &Service{
		exec:     exec,
		logger:   logger,
		notice:   NewNotice(noticeTTL),
		inFlight: make(map[*cart.Cart]struct{}),
	}
}

// Notice returns the order-placed notice.
func (s *Service) Notice() *Notice {
	return s.notice
}

// Place submits the cart as an order. An empty cart is rejected before
// any request is sent. On success the cart is cleared and the notice
// raised; on failure the cart is left untouched so the user can retry.
// The in-flight guard is released on every path.
//
// The insertOrder contract carries one product id per line item; the
// quantity is not encoded.
func (s *Service) Place(ctx context.Context, c *cart.Cart) (*Receipt, error) {
	if c.Empty() {
		return nil, ErrEmptyCart
	}
	if !s.begin(c) {
		return nil, ErrInFlight
	}
	defer s.end(c)

	items := c.Items()
	productIDs := make([]string, 0, len(items))
	for i := range items {
		productIDs = append(productIDs, items[i].Product.ID)
	}
	total := c.Total()

	resp, err := s.exec.Execute(ctx, InsertOrderMutation, map[string]interface{}{
		"orderProducts": productIDs,
		"totalPrice":    total,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	receipt, err := decodeReceipt(resp.Data)
	if err != nil {
		return nil, err
	}

	c.Clear()
	s.notice.Raise()
	s.logger.Info("order placed",
		zap.String("order_id", receipt.ID),
		zap.Int("lines", len(productIDs)),
		zap.Float64("total", total),
	)
	return receipt, nil
}

func (s *Service) begin(c *cart.Cart) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[c]; busy {
		return false
	}
	s.inFlight[c] = struct{}{}
	return true
}

func (s *Service) end(c *cart.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, c)
}

// decodeReceipt extracts the order identifier. The API is expected to
// return an identifier for insertOrder, but the scalar shape varies,
// so a bare string, a number, and an object with an id field are all
// accepted.
func decodeReceipt(data json.RawMessage) (*Receipt, error) {
	var envelope struct {
		InsertOrder interface{} `json:"insertOrder"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse insert order response: %w", err)
	}

	switch v := envelope.InsertOrder.(type) {
	case string:
		if v != "" {
			return &Receipt{ID: v}, nil
		}
	case float64:
		return &Receipt{ID: strconv.FormatFloat(v, 'f', -1, 64)}, nil
	case map[string]interface{}:
		switch id := v["id"].(type) {
		case string:
			if id != "" {
				return &Receipt{ID: id}, nil
			}
		case float64:
			return &Receipt{ID: strconv.FormatFloat(id, 'f', -1, 64)}, nil
		}
	}
	return nil, errors.New("insert order response missing identifier")
}

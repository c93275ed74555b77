package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/velstore/storefront/internal/domain"
	"github.com/velstore/storefront/internal/graphql"
)

// ErrNotFound is returned when the API answers a product query with no
// product.
var ErrNotFound = errors.New("product not found")

// Executor runs GraphQL operations against the storefront API.
type Executor interface {
	Execute(ctx context.Context, query string, variables map[string]interface{}) (*graphql.Response, error)
}

// Client exposes typed catalog reads over the GraphQL executor.
// Listing reads degrade to empty collections on failure so pages still
// render; the single-product read propagates its error.
type Client struct {
	exec   Executor
	logger *zap.Logger
	sfg    singleflight.Group // collapses concurrent identical fetches
}

// NewClient creates a new catalog client
func NewClient(exec Executor, logger *zap.Logger) *Client {
	return &Client{
		exec:   exec,
		logger: logger,
	}
}

// Categories returns the category list, or an empty list when the
// fetch fails or the response is malformed.
func (c *Client) Categories(ctx context.Context) []domain.Category {
	resp, err := c.exec.Execute(ctx, CategoriesQuery, nil)
	if err != nil {
		c.logger.Warn("categories fetch failed", zap.Error(err))
		return []domain.Category{}
	}

	var result struct {
		Categories []domain.Category `json:"categories"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		c.logger.Warn("categories response malformed", zap.Error(err))
		return []domain.Category{}
	}
	if result.Categories == nil {
		return []domain.Category{}
	}
	return result.Categories
}

// Products returns the full product listing, or an empty list when the
// fetch fails or the response is malformed. Concurrent calls share one
// in-flight request.
func (c *Client) Products(ctx context.Context) []domain.Product {
	v, err, _ := c.sfg.Do("products", func() (interface{}, error) {
		resp, err := c.exec.Execute(ctx, ProductsQuery, nil)
		if err != nil {
			return nil, err
		}

		var result struct {
			Products []domain.Product `json:"products"`
		}
		if err := json.Unmarshal(resp.Data, &result); err != nil {
			return nil, err
		}
		if result.Products == nil {
			return []domain.Product{}, nil
		}
		return result.Products, nil
	})
	if err != nil {
		c.logger.Warn("products fetch failed", zap.Error(err))
		return []domain.Product{}
	}
	return v.([]domain.Product)
}

// ProductByID fetches one product. Unlike the listing reads, failures
// propagate so the caller can surface an error state.
func (c *Client) ProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	resp, err := c.exec.Execute(ctx, ProductQuery, map[string]interface{}{
		"productId": productID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product %s: %w", productID, err)
	}

	var result struct {
		Product *domain.Product `json:"product"`
	}
	if err := json.Unmarshal(resp.Data, &result); err != nil {
		return nil, fmt.Errorf("failed to parse product response: %w", err)
	}
	if result.Product == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, productID)
	}

	return result.Product, nil
}

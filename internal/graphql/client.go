package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Client talks to the single-endpoint GraphQL-style storefront API.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new GraphQL client for the given endpoint.
func NewClient(endpoint string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// Request represents a GraphQL request
type Request struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// Response represents a GraphQL response
type Response struct {
	Data   json.RawMessage `json:"data"`
	Errors []Error         `json:"errors,omitempty"`
}

// Error represents a GraphQL error
type Error struct {
	Message string   `json:"message"`
	Path    []string `json:"path,omitempty"`
}

// Execute executes a GraphQL query/mutation. A transport failure, a
// non-200 status, or a response carrying GraphQL errors all return an
// error; callers decide whether to degrade or propagate.
func (c *Client) Execute(ctx context.Context, query string, variables map[string]interface{}) (*Response, error) {
	reqBody := Request{
		Query:     query,
		Variables: variables,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("storefront API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var graphQLResp Response
	if err := json.Unmarshal(body, &graphQLResp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(graphQLResp.Errors) > 0 {
		return nil, fmt.Errorf("graphQL errors: %v", graphQLResp.Errors)
	}

	return &graphQLResp, nil
}

package shopclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sizzilia/storefront/internal/models"
	"github.com/sizzilia/storefront/internal/transport"
)

// Client talks to the storefront API. It implements checkout.OrderPlacer
// and search.ProductLister.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// APIError carries the status and the server's user-facing message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("api error: status %d", e.Status)
}

func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := c.doJSON(ctx, http.MethodGet, "/api/products", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) Product(ctx context.Context, id string) (*models.Product, error) {
	var p models.Product
	if err := c.doJSON(ctx, http.MethodGet, "/api/products/"+id, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) PlaceOrder(ctx context.Context, req transport.ProcessOrderRequest) (*transport.ProcessOrderResponse, error) {
	var resp transport.ProcessOrderResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/orders/process-order", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SendContact(ctx context.Context, req transport.ContactRequest) error {
	var resp transport.MessageResponse
	return c.doJSON(ctx, http.MethodPost, "/api/contact", req, &resp)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr transport.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

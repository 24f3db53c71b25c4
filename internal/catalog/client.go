package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// Client talks to the remote catalog API. Every method is a single round
// trip; there is no retry and no caching here. Failures collapse into one
// generic error per call, the views decide what to tell the user.
type Client struct {
	base string
	hc   *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		base: strings.TrimRight(baseURL, "/"),
		hc:   &http.Client{},
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("catalog api: encode %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, rd)
	if err != nil {
		return fmt.Errorf("catalog api: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("catalog api: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("catalog api: %s %s: status %d", method, path, resp.StatusCode)
	}
	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("catalog api: decode %s %s: %w", method, path, err)
		}
	}
	return nil
}

func (c *Client) ListProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id int64) (Product, error) {
	var out Product
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &out)
	return out, err
}

func (c *Client) CreateProduct(ctx context.Context, draft Product) (Product, error) {
	var out Product
	err := c.do(ctx, http.MethodPost, "/products", draft, &out)
	return out, err
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, draft Product) (Product, error) {
	var out Product
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), draft, &out)
	return out, err
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
}

func (c *Client) ListOrders(ctx context.Context) ([]Order, error) {
	var out []Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOrder(ctx context.Context, id int64) (Order, error) {
	var out Order
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, &out)
	return out, err
}

func (c *Client) CreateOrder(ctx context.Context, draft Order) (Order, error) {
	var out Order
	err := c.do(ctx, http.MethodPost, "/orders", draft, &out)
	return out, err
}

func (c *Client) UpdateOrder(ctx context.Context, id int64, draft Order) (Order, error) {
	var out Order
	err := c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", id), draft, &out)
	return out, err
}

func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/orders/%d", id), nil, nil)
}

package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/velorashop/backoffice/internal/domain"
	"github.com/velorashop/backoffice/pkg/errors"
)

// Client calls the storefront API with a service key. It is the only
// boundary of the back office: bulk reads feed the entity store and
// mutations persist admin changes before they are applied locally.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a storefront HTTP client
func NewClient(baseURL, apiKey string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

// FetchProducts fetches the full product collection
func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.getJSON(ctx, "/admin/products", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchOrders fetches the full order collection
func (c *Client) FetchOrders(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.getJSON(ctx, "/admin/orders", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchCustomers fetches the full customer collection
func (c *Client) FetchCustomers(ctx context.Context) ([]domain.Customer, error) {
	var out []domain.Customer
	if err := c.getJSON(ctx, "/admin/customers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchBanners fetches the full banner collection
func (c *Client) FetchBanners(ctx context.Context) ([]domain.Banner, error) {
	var out []domain.Banner
	if err := c.getJSON(ctx, "/admin/banners", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FetchReviews fetches the full review collection
func (c *Client) FetchReviews(ctx context.Context) ([]domain.Review, error) {
	var out []domain.Review
	if err := c.getJSON(ctx, "/admin/reviews", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateOrderStatus persists an order status change. Returns the updated
// order as echoed by the storefront, or nil when the response body did not
// include one (the caller then falls back to a full refresh).
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) (*domain.Order, error) {
	body := map[string]string{"orderStatus": string(status)}
	var out domain.Order
	ok, err := c.mutateJSON(ctx, http.MethodPatch, "/admin/orders/"+orderID+"/status", body, &out)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &out, nil
}

// CreateProduct persists a new product
func (c *Client) CreateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	var out domain.Product
	ok, err := c.mutateJSON(ctx, http.MethodPost, "/admin/products", p, &out)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &out, nil
}

// UpdateProduct persists changes to an existing product
func (c *Client) UpdateProduct(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	var out domain.Product
	ok, err := c.mutateJSON(ctx, http.MethodPut, "/admin/products/"+p.ID, p, &out)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &out, nil
}

// DeleteProduct removes a product
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	_, err := c.mutateJSON(ctx, http.MethodDelete, "/admin/products/"+id, nil, nil)
	return err
}

// CreateBanner persists a new banner
func (c *Client) CreateBanner(ctx context.Context, b *domain.Banner) (*domain.Banner, error) {
	var out domain.Banner
	ok, err := c.mutateJSON(ctx, http.MethodPost, "/admin/banners", b, &out)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &out, nil
}

// UpdateBanner persists changes to an existing banner
func (c *Client) UpdateBanner(ctx context.Context, b *domain.Banner) (*domain.Banner, error) {
	var out domain.Banner
	ok, err := c.mutateJSON(ctx, http.MethodPut, "/admin/banners/"+b.ID, b, &out)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &out, nil
}

// DeleteBanner removes a banner
func (c *Client) DeleteBanner(ctx context.Context, id string) error {
	_, err := c.mutateJSON(ctx, http.MethodDelete, "/admin/banners/"+id, nil, nil)
	return err
}

// DeleteReview removes a review
func (c *Client) DeleteReview(ctx context.Context, id string) error {
	_, err := c.mutateJSON(ctx, http.MethodDelete, "/admin/reviews/"+id, nil, nil)
	return err
}

// getJSON performs a GET and decodes the response into out
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	if c.baseURL == "" {
		return fmt.Errorf("storefront client not configured: base URL required")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Storefront request failed", zap.Error(err), zap.String("path", path))
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return remoteError(resp.StatusCode, raw)
	}
	return json.Unmarshal(raw, out)
}

// mutateJSON performs a mutating call. Returns true when the response body
// contained an entity that was decoded into out.
func (c *Client) mutateJSON(ctx context.Context, method, path string, body interface{}, out interface{}) (bool, error) {
	if c.baseURL == "" {
		return false, fmt.Errorf("storefront client not configured: base URL required")
	}
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return false, err
		}
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return false, err
	}
	c.setHeaders(req)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Key every mutation so a retried call can't double-apply upstream
	req.Header.Set("Idempotency-Key", uuid.New().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Storefront mutation failed", zap.Error(err),
			zap.String("method", method), zap.String("path", path))
		return false, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, remoteError(resp.StatusCode, raw)
	}
	if out == nil || len(raw) == 0 {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		// Mutation succeeded but the echo is unusable; caller refreshes
		c.logger.Warn("Storefront response not decodable", zap.Error(err), zap.String("path", path))
		return false, nil
	}
	return true, nil
}

func (c *Client) setHeaders(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")
}

// remoteError builds an ErrRemote, extracting the upstream error/message
// field when the body carries a JSON error envelope
func remoteError(status int, body []byte) error {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	msg := ""
	if json.Unmarshal(body, &envelope) == nil {
		if envelope.Error != "" {
			msg = envelope.Error
		} else if envelope.Message != "" {
			msg = envelope.Message
		}
	}
	return &errors.ErrRemote{StatusCode: status, Message: msg}
}

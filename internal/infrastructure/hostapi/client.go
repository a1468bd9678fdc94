package hostapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/ordersync/backend/internal/domain/shared"
	ordersync "github.com/ordersync/backend/internal/domain/sync"
)

// maxResponseSize is the maximum allowed response size from the host API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// accessTokenHeader authenticates admin API requests
const accessTokenHeader = "X-Api-Access-Token"

// Client implements the HostPlatform port against the host platform's
// admin REST API.
type Client struct {
	config     *Config
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a host platform client with the given configuration
func NewClient(config *Config, logger *zap.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	timeout := 30 * time.Second
	if config.TimeoutSeconds > 0 {
		timeout = time.Duration(config.TimeoutSeconds) * time.Second
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// FindCustomerByEmail returns the first customer whose email matches exactly.
// The search query is not a unique index on the host side; first match wins.
func (c *Client) FindCustomerByEmail(ctx context.Context, email string) (*ordersync.HostCustomer, error) {
	return c.searchCustomer(ctx, "email:"+email)
}

// FindCustomerByPhone returns the first customer whose phone matches exactly
func (c *Client) FindCustomerByPhone(ctx context.Context, phone string) (*ordersync.HostCustomer, error) {
	return c.searchCustomer(ctx, "phone:"+phone)
}

func (c *Client) searchCustomer(ctx context.Context, query string) (*ordersync.HostCustomer, error) {
	path := "/customers/search.json?query=" + url.QueryEscape(query)
	body, err := c.doRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	var resp customerSearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("hostapi: failed to parse customer search response: %w", err)
	}
	if len(resp.Customers) == 0 {
		return nil, shared.ErrNotFound
	}
	return resp.Customers[0].toDomain(), nil
}

// CreateCustomer creates a new customer on the host platform
func (c *Client) CreateCustomer(ctx context.Context, input ordersync.NewCustomerInput) (*ordersync.HostCustomer, error) {
	payload := newCustomerPayload{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
	}
	if addr := toWireAddress(input.Address); addr != nil {
		payload.Addresses = []wireAddress{*addr}
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/customers.json", createCustomerRequest{Customer: payload})
	if err != nil {
		return nil, err
	}

	var resp customerEnvelope
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("hostapi: failed to parse customer create response: %w", err)
	}

	c.logger.Info("created host customer",
		zap.Int64("customer_id", resp.Customer.ID),
		zap.String("email", resp.Customer.Email))

	return resp.Customer.toDomain(), nil
}

// CreateDraftOrder creates a draft order on the host platform
func (c *Client) CreateDraftOrder(ctx context.Context, input ordersync.DraftOrderInput) (*ordersync.DraftOrder, error) {
	payload := draftOrderPayload{
		LineItems:       make([]wireLineItem, 0, len(input.LineItems)),
		ShippingAddress: toWireAddress(input.ShippingAddress),
		Note:            input.Note,
		Tags:            input.Tags,
	}
	for _, li := range input.LineItems {
		payload.LineItems = append(payload.LineItems, wireLineItem{
			Title:    li.Title,
			Quantity: li.Quantity,
			Price:    li.Price.StringFixed(2),
			SKU:      li.SKU,
		})
	}

	// A resolved customer is linked by id; otherwise the raw contact fields
	// go on the order itself.
	if input.CustomerID != "" {
		id, err := strconv.ParseInt(input.CustomerID, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("hostapi: invalid customer id %q: %w", input.CustomerID, err)
		}
		payload.Customer = &customerRef{ID: id}
	} else {
		payload.Email = input.Email
		payload.Phone = input.Phone
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/draft_orders.json", createDraftOrderRequest{DraftOrder: payload})
	if err != nil {
		return nil, err
	}

	var resp draftOrderEnvelope
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("hostapi: failed to parse draft order response: %w", err)
	}
	if resp.DraftOrder.ID == 0 {
		return nil, fmt.Errorf("hostapi: draft order response carries no order id")
	}

	c.logger.Info("created host draft order",
		zap.Int64("order_id", resp.DraftOrder.ID),
		zap.String("order_name", resp.DraftOrder.Name))

	return &ordersync.DraftOrder{
		ID:   strconv.FormatInt(resp.DraftOrder.ID, 10),
		Name: resp.DraftOrder.Name,
	}, nil
}

// doRequest performs one HTTP round trip against the admin API
func (c *Client) doRequest(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("hostapi: failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("hostapi: failed to create request: %w", err)
	}
	req.Header.Set(accessTokenHeader, c.config.AccessToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hostapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("hostapi: failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.text() != "" {
			return nil, fmt.Errorf("hostapi: HTTP %d: %s", resp.StatusCode, apiErr.text())
		}
		return nil, fmt.Errorf("hostapi: HTTP %d", resp.StatusCode)
	}

	return body, nil
}

// Ensure Client implements HostPlatform
var _ ordersync.HostPlatform = (*Client)(nil)

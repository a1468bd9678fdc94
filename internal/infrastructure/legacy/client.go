package legacy

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	ordersync "github.com/ordersync/backend/internal/domain/sync"
)

// maxResponseSize is the maximum allowed response size from the legacy service (10MB)
const maxResponseSize = 10 * 1024 * 1024

// defaultTimeout bounds a single RPC round trip
const defaultTimeout = 30 * time.Second

// serviceDescriptionQuery is the query suffix the protocol mandates for the
// service description document
const serviceDescriptionQuery = "wsdl"

// NormalizeEndpoint canonicalizes a configured endpoint URL: trims
// whitespace, defaults the scheme, and guarantees the service-description
// query suffix. Two configs pointing at the same service normalize to the
// same string, which is what keys the client pool.
func NormalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("legacy: empty endpoint URL")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("legacy: invalid endpoint URL: %w", err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("legacy: invalid endpoint URL: %s", raw)
	}
	u.RawQuery = serviceDescriptionQuery
	u.Fragment = ""
	return u.String(), nil
}

// Client talks to one legacy service endpoint. It holds no order-specific
// state and is safe for concurrent use.
type Client struct {
	// endpoint is the normalized URL including the service-description query
	endpoint string
	// postURL is the operation target, the endpoint without the query
	postURL    string
	authCode   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a client for a normalized endpoint URL
func NewClient(endpoint, authCode string, logger *zap.Logger) *Client {
	postURL := endpoint
	if i := strings.IndexByte(postURL, '?'); i >= 0 {
		postURL = postURL[:i]
	}
	return &Client{
		endpoint: endpoint,
		postURL:  postURL,
		authCode: authCode,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger,
	}
}

// Endpoint returns the normalized endpoint URL the client targets
func (c *Client) Endpoint() string {
	return c.endpoint
}

// FetchOrders returns one page of orders matching the filter. Page numbers
// are 1-indexed. An empty page means there is no more data.
func (c *Client) FetchOrders(ctx context.Context, filter ordersync.OrderFilter, pageSize, pageNumber int) ([]ordersync.RemoteOrder, error) {
	if pageSize < 1 {
		pageSize = 1
	}
	if pageNumber < 1 {
		pageNumber = 1
	}

	req := selectOrdersRequest{
		Xmlns:    "http://tempuri.org/",
		AuthCode: c.authCode,
		Filter:   toWireFilter(filter),
		Paging: wirePaging{
			PageSize:      pageSize,
			PageNumber:    pageNumber,
			SortField:     "OrderDate",
			SortDirection: "DESC",
		},
	}

	body, err := c.call(ctx, "SelectOrders", req)
	if err != nil {
		return nil, err
	}

	var envelope responseEnvelope
	if err := xml.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ordersync.ErrConnection, err)
	}
	if envelope.Body.Fault != nil {
		return nil, fmt.Errorf("%w: %s - %s", ordersync.ErrConnection,
			envelope.Body.Fault.FaultCode, envelope.Body.Fault.FaultString)
	}
	if envelope.Body.SelectOrdersResponse == nil {
		return nil, fmt.Errorf("%w: missing SelectOrdersResponse", ordersync.ErrConnection)
	}

	wireOrders := envelope.Body.SelectOrdersResponse.Result.Orders
	orders := make([]ordersync.RemoteOrder, 0, len(wireOrders))
	for i := range wireOrders {
		orders = append(orders, convertWireOrder(&wireOrders[i]))
	}

	c.logger.Debug("fetched order page",
		zap.String("endpoint", c.postURL),
		zap.Int("page", pageNumber),
		zap.Int("count", len(orders)))

	return orders, nil
}

// TestConnection issues a one-record fetch and reports reachability. The
// returned error carries a human-readable reason.
func (c *Client) TestConnection(ctx context.Context) error {
	if _, err := c.FetchOrders(ctx, ordersync.OrderFilter{}, 1, 1); err != nil {
		return fmt.Errorf("legacy: connection test failed for %s: %w", c.postURL, err)
	}
	return nil
}

// call performs one SOAP round trip and returns the raw response body
func (c *Client) call(ctx context.Context, action string, payload interface{}) ([]byte, error) {
	envelope := soapEnvelope{
		XmlnsNS: "http://schemas.xmlsoap.org/soap/envelope/",
		Body:    soapBody{Payload: payload},
	}

	raw, err := xml.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("legacy: failed to encode request: %w", err)
	}
	raw = append([]byte(xml.Header), raw...)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.postURL, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("legacy: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set("SOAPAction", "http://tempuri.org/"+action)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ordersync.ErrConnection, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ordersync.ErrConnection, err)
	}

	// A misconfigured endpoint answers with an HTML error page instead of a
	// service payload. That must surface as a connection error, never be
	// parsed as data.
	if looksLikeHTML(body) {
		return nil, fmt.Errorf("%w: endpoint returned an HTML page instead of a service payload", ordersync.ErrConnection)
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: HTTP %d", ordersync.ErrConnection, resp.StatusCode)
	}

	return body, nil
}

// looksLikeHTML reports whether a response body is an HTML document
func looksLikeHTML(body []byte) bool {
	head := strings.ToLower(strings.TrimSpace(string(body[:min(len(body), 256)])))
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}

// toWireFilter lowers the domain filter onto the wire shape, substituting
// the -1 sentinel for unset selectors
func toWireFilter(f ordersync.OrderFilter) wireOrderFilter {
	w := wireOrderFilter{
		OrderStatus:    unrestricted,
		PaymentStatus:  unrestricted,
		ShipmentStatus: unrestricted,
		SupplierID:     unrestricted,
		CampaignID:     unrestricted,
		StoreID:        unrestricted,
	}
	if f.Status != nil {
		w.OrderStatus = f.Status.Code()
	}
	if f.PaymentStatus != nil {
		w.PaymentStatus = *f.PaymentStatus
	}
	if f.ShipmentStatus != nil {
		w.ShipmentStatus = *f.ShipmentStatus
	}
	if f.SupplierID != nil {
		w.SupplierID = *f.SupplierID
	}
	if f.CampaignID != nil {
		w.CampaignID = *f.CampaignID
	}
	if f.StoreID != nil {
		w.StoreID = *f.StoreID
	}
	if f.StartDate != nil {
		w.StartDate = f.StartDate.Format(wireTimeLayout)
	}
	if f.EndDate != nil {
		w.EndDate = f.EndDate.Format(wireTimeLayout)
	}
	return w
}

// convertWireOrder converts a wire order record to the domain shape
func convertWireOrder(o *wireOrder) ordersync.RemoteOrder {
	order := ordersync.RemoteOrder{
		OrderNumber: strings.TrimSpace(o.OrderNumber),
		Name:        o.Name,
		Surname:     o.Surname,
		Email:       strings.TrimSpace(o.Email),
		RawPhone:    o.Phone,
		Status:      ordersync.OrderStatusFromCode(o.OrderStatus),
		Address: ordersync.Address{
			Street:   o.Address.Street,
			District: o.Address.District,
			City:     o.Address.City,
			Province: o.Address.Province,
			ZipCode:  o.Address.ZipCode,
			Country:  o.Address.Country,
		},
		Items: make([]ordersync.LineItem, 0, len(o.Products.Products)),
	}

	if o.OrderDate != "" {
		if t, err := time.ParseInLocation(wireTimeLayout, o.OrderDate, time.Local); err == nil {
			order.OrderDate = t
		}
	}

	for i := range o.Products.Products {
		p := &o.Products.Products[i]
		qty := p.Quantity
		if qty < 1 {
			qty = 1
		}
		order.Items = append(order.Items, ordersync.LineItem{
			Title:      p.displayTitle(),
			Quantity:   qty,
			BaseAmount: ParseDecimal(p.Price),
			TaxAmount:  ParseDecimal(p.Tax),
			SKU:        p.Sku,
			SupplierID: strings.TrimSpace(p.SupplierID),
		})
	}

	return order
}

// Ensure Client implements RemoteOrderSource
var _ ordersync.RemoteOrderSource = (*Client)(nil)

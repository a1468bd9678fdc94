package sync

import (
	"context"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Customer Resolution Value Objects
// ---------------------------------------------------------------------------

// CustomerMatch is the result of resolving a host customer for an order.
// It is created once per import and discarded after use; only the host
// customer identifier survives, inside the ledger entry.
type CustomerMatch struct {
	// HostCustomerID is the customer identifier on the host platform
	HostCustomerID string
	// DisplayName is the customer's display name
	DisplayName string
	// IsNew distinguishes "newly created" from "found existing"
	IsNew bool
}

// HostCustomer is a customer record as the host platform returns it
type HostCustomer struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

// DisplayName returns the customer's display name
func (c *HostCustomer) DisplayName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// NewCustomerInput carries the fields for creating a host customer
type NewCustomerInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	// Address is optional; province/zip/country are defaulted when absent
	Address *HostAddress
}

// ---------------------------------------------------------------------------
// Host Order Value Objects
// ---------------------------------------------------------------------------

// HostLineItem is one line of the draft order submitted to the host platform.
// Price is the displayed unit price with tax folded in.
type HostLineItem struct {
	Title    string
	Quantity int
	Price    decimal.Decimal
	SKU      string
}

// HostAddress is a shipping address in the host platform's shape
type HostAddress struct {
	FirstName string
	LastName  string
	Address1  string
	Address2  string
	City      string
	Province  string
	Zip       string
	Country   string
	Phone     string
}

// DraftOrderInput carries everything needed to create a host draft order.
// CustomerID links an existing customer; when empty the raw Email/Phone
// contact fields are submitted instead.
type DraftOrderInput struct {
	CustomerID      string
	Email           string
	Phone           string
	LineItems       []HostLineItem
	ShippingAddress *HostAddress
	// Note and Tags embed the source order number for traceability
	Note string
	Tags string
}

// DraftOrder is the created host order reference
type DraftOrder struct {
	// ID is the host order identifier
	ID string
	// Name is the host order display name, e.g. "#D1042"
	Name string
}

// ---------------------------------------------------------------------------
// Ports
// ---------------------------------------------------------------------------

// RemoteOrderSource is the port to the legacy order service. The concrete
// SOAP client in the infrastructure layer implements it.
type RemoteOrderSource interface {
	// FetchOrders returns one page of orders matching the filter, possibly
	// empty. Page numbers are 1-indexed.
	FetchOrders(ctx context.Context, filter OrderFilter, pageSize, pageNumber int) ([]RemoteOrder, error)

	// TestConnection issues a one-record fetch and reports reachability
	TestConnection(ctx context.Context) error
}

// RemoteSourceProvider yields the RemoteOrderSource for a shop connection.
// The client pool in the infrastructure layer implements it, caching one
// client per normalized endpoint URL.
type RemoteSourceProvider interface {
	Source(conn *ShopConnection) (RemoteOrderSource, error)
}

// HostPlatform is the port to the destination commerce platform.
type HostPlatform interface {
	// FindCustomerByEmail returns the first customer matching the email
	// exactly, or shared.ErrNotFound
	FindCustomerByEmail(ctx context.Context, email string) (*HostCustomer, error)

	// FindCustomerByPhone returns the first customer matching the phone
	// exactly, or shared.ErrNotFound
	FindCustomerByPhone(ctx context.Context, phone string) (*HostCustomer, error)

	// CreateCustomer creates a new host customer
	CreateCustomer(ctx context.Context, input NewCustomerInput) (*HostCustomer, error)

	// CreateDraftOrder creates a draft order on the host platform
	CreateDraftOrder(ctx context.Context, input DraftOrderInput) (*DraftOrder, error)
}

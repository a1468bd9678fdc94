package hostapi

import (
	"encoding/json"
	"strconv"

	ordersync "github.com/ordersync/backend/internal/domain/sync"
)

// Wire types for the host platform admin API (JSON over REST).

type wireCustomer struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (c *wireCustomer) toDomain() *ordersync.HostCustomer {
	return &ordersync.HostCustomer{
		ID:        strconv.FormatInt(c.ID, 10),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
	}
}

type customerSearchResponse struct {
	Customers []wireCustomer `json:"customers"`
}

type customerEnvelope struct {
	Customer wireCustomer `json:"customer"`
}

type newCustomerPayload struct {
	FirstName string        `json:"first_name"`
	LastName  string        `json:"last_name"`
	Email     string        `json:"email,omitempty"`
	Phone     string        `json:"phone,omitempty"`
	Addresses []wireAddress `json:"addresses,omitempty"`
}

type createCustomerRequest struct {
	Customer newCustomerPayload `json:"customer"`
}

type wireAddress struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Address1  string `json:"address1,omitempty"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city,omitempty"`
	Province  string `json:"province,omitempty"`
	Zip       string `json:"zip,omitempty"`
	Country   string `json:"country,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

func toWireAddress(a *ordersync.HostAddress) *wireAddress {
	if a == nil {
		return nil
	}
	return &wireAddress{
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Address1:  a.Address1,
		Address2:  a.Address2,
		City:      a.City,
		Province:  a.Province,
		Zip:       a.Zip,
		Country:   a.Country,
		Phone:     a.Phone,
	}
}

type wireLineItem struct {
	Title    string `json:"title"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	SKU      string `json:"sku,omitempty"`
}

type customerRef struct {
	ID int64 `json:"id"`
}

type draftOrderPayload struct {
	LineItems       []wireLineItem `json:"line_items"`
	Customer        *customerRef   `json:"customer,omitempty"`
	Email           string         `json:"email,omitempty"`
	Phone           string         `json:"phone,omitempty"`
	ShippingAddress *wireAddress   `json:"shipping_address,omitempty"`
	Note            string         `json:"note,omitempty"`
	Tags            string         `json:"tags,omitempty"`
}

type createDraftOrderRequest struct {
	DraftOrder draftOrderPayload `json:"draft_order"`
}

type draftOrderEnvelope struct {
	DraftOrder struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	} `json:"draft_order"`
}

// apiError is the error envelope the host platform returns on 4xx/5xx
type apiError struct {
	Errors json.RawMessage `json:"errors"`
}

// text renders the error payload for inclusion in ledger rows
func (e *apiError) text() string {
	if len(e.Errors) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(e.Errors, &s); err == nil {
		return s
	}
	return string(e.Errors)
}

package sync

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Remote Order Value Objects
// ---------------------------------------------------------------------------

// Address holds the shipping address fields as the legacy service reports them
type Address struct {
	// Street is the free-text street line
	Street string
	// District is the sub-city district
	District string
	// City is the delivery city
	City string
	// Province is the delivery province or state
	Province string
	// ZipCode is the postal code
	ZipCode string
	// Country is the delivery country
	Country string
}

// IsZero returns true when no address field is set
func (a Address) IsZero() bool {
	return a == Address{}
}

// LineItem is a single order line as returned by the legacy service.
// BaseAmount and TaxAmount are tax-exclusive unit amounts in currency
// precision; the payable unit price is their sum.
type LineItem struct {
	// Title is the product display title, extra option descriptors included
	Title string
	// Quantity is the unit quantity, always >= 1
	Quantity int
	// BaseAmount is the tax-exclusive unit amount
	BaseAmount decimal.Decimal
	// TaxAmount is the unit tax amount
	TaxAmount decimal.Decimal
	// SKU is the stock keeping unit code
	SKU string
	// SupplierID is the optional supplier identifier
	SupplierID string
}

// UnitPrice returns the payable unit price, tax folded in
func (li LineItem) UnitPrice() decimal.Decimal {
	return li.BaseAmount.Add(li.TaxAmount)
}

// Total returns the payable amount for the line
func (li LineItem) Total() decimal.Decimal {
	return li.UnitPrice().Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// RemoteOrder is an order exactly as fetched from the legacy service.
// It is immutable once fetched and lives only for the duration of one
// sync run.
type RemoteOrder struct {
	// OrderNumber is the source-unique order identifier per shop
	OrderNumber string
	// OrderDate is when the order was placed on the legacy service
	OrderDate time.Time
	// Name is the buyer's first name
	Name string
	// Surname is the buyer's last name
	Surname string
	// Email is the buyer's email address, may be empty
	Email string
	// RawPhone is the buyer's phone exactly as the legacy service stores it
	RawPhone string
	// Address is the shipping address, may be zero
	Address Address
	// Status is the legacy order state code
	Status OrderStatus
	// Items contains the order lines
	Items []LineItem
}

// BuyerName returns the buyer's display name
func (o *RemoteOrder) BuyerName() string {
	return strings.TrimSpace(strings.TrimSpace(o.Name) + " " + strings.TrimSpace(o.Surname))
}

// Validate checks the fields the import pipeline depends on
func (o *RemoteOrder) Validate() error {
	if o.OrderNumber == "" {
		return ErrInvalidOrder
	}
	if len(o.Items) == 0 {
		return ErrInvalidOrder
	}
	for _, li := range o.Items {
		if li.Quantity < 1 {
			return ErrInvalidOrder
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Normalization
// ---------------------------------------------------------------------------

// NormalizedOrder is a RemoteOrder with the phone replaced by its canonical
// international form (or empty when invalid) and the total recomputed from
// the line items. The upstream total field is never trusted.
type NormalizedOrder struct {
	RemoteOrder

	// Phone is the canonical +<country><digits> form, empty when absent
	Phone string
	// Total is the recomputed payable amount for the whole order
	Total decimal.Decimal
}

// Normalize derives a NormalizedOrder from a raw remote order
func Normalize(o RemoteOrder) NormalizedOrder {
	total := decimal.Zero
	for _, li := range o.Items {
		total = total.Add(li.Total())
	}
	return NormalizedOrder{
		RemoteOrder: o,
		Phone:       NormalizePhone(o.RawPhone),
		Total:       total,
	}
}

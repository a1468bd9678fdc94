package legacy

import (
	"encoding/xml"
	"strings"

	"github.com/shopspring/decimal"
)

// Wire types for the legacy order service. The service speaks SOAP 1.1:
// POST with an XML envelope, one operation element per call. Selector
// fields use -1 for "unrestricted" on the wire; that sentinel never leaves
// this package.

// unrestricted is the wire sentinel for an unset selector field
const unrestricted = -1

// wireTimeLayout is the timestamp format the legacy service uses
const wireTimeLayout = "2006-01-02T15:04:05"

// soapEnvelope wraps a request body for transmission
type soapEnvelope struct {
	XMLName xml.Name `xml:"soap:Envelope"`
	XmlnsNS string   `xml:"xmlns:soap,attr"`
	Body    soapBody `xml:"soap:Body"`
}

type soapBody struct {
	Payload interface{}
}

// selectOrdersRequest is the SelectOrders operation payload
type selectOrdersRequest struct {
	XMLName  xml.Name        `xml:"SelectOrders"`
	Xmlns    string          `xml:"xmlns,attr"`
	AuthCode string          `xml:"AuthCode"`
	Filter   wireOrderFilter `xml:"Filter"`
	Paging   wirePaging      `xml:"Paging"`
}

// wireOrderFilter carries the selector fields, -1 meaning unrestricted
type wireOrderFilter struct {
	OrderStatus    int    `xml:"OrderStatus"`
	PaymentStatus  int    `xml:"PaymentStatus"`
	ShipmentStatus int    `xml:"ShipmentStatus"`
	SupplierID     int    `xml:"SupplierId"`
	CampaignID     int    `xml:"CampaignId"`
	StoreID        int    `xml:"StoreId"`
	StartDate      string `xml:"StartDate"`
	EndDate        string `xml:"EndDate"`
}

// wirePaging carries the pagination block
type wirePaging struct {
	PageSize      int    `xml:"PageSize"`
	PageNumber    int    `xml:"PageNumber"`
	SortField     string `xml:"SortField"`
	SortDirection string `xml:"SortDirection"`
}

// responseEnvelope is the inbound SOAP envelope. Tags carry no namespace so
// the decoder matches local element names regardless of the service's prefix.
type responseEnvelope struct {
	XMLName xml.Name     `xml:"Envelope"`
	Body    responseBody `xml:"Body"`
}

type responseBody struct {
	SelectOrdersResponse *selectOrdersResponse `xml:"SelectOrdersResponse"`
	Fault                *soapFault            `xml:"Fault"`
}

type soapFault struct {
	FaultCode   string `xml:"faultcode"`
	FaultString string `xml:"faultstring"`
}

type selectOrdersResponse struct {
	Result selectOrdersResult `xml:"SelectOrdersResult"`
}

type selectOrdersResult struct {
	Orders []wireOrder `xml:"Order"`
}

// wireOrder mirrors the legacy service's order record
type wireOrder struct {
	OrderNumber string       `xml:"OrderNumber"`
	OrderDate   string       `xml:"OrderDate"`
	Name        string       `xml:"Name"`
	Surname     string       `xml:"Surname"`
	Email       string       `xml:"Email"`
	Phone       string       `xml:"Phone"`
	OrderStatus int          `xml:"OrderStatus"`
	Address     wireAddress  `xml:"Address"`
	Products    wireProducts `xml:"Products"`
}

type wireAddress struct {
	Street   string `xml:"Street"`
	District string `xml:"District"`
	City     string `xml:"City"`
	Province string `xml:"Province"`
	ZipCode  string `xml:"ZipCode"`
	Country  string `xml:"Country"`
}

type wireProducts struct {
	Products []wireProduct `xml:"Product"`
}

type wireProduct struct {
	Name       string       `xml:"Name"`
	Quantity   int          `xml:"Quantity"`
	Price      string       `xml:"Price"`
	Tax        string       `xml:"Tax"`
	Sku        string       `xml:"Sku"`
	SupplierID string       `xml:"SupplierId"`
	Options    *wireOptions `xml:"Options"`
}

type wireOptions struct {
	Options []wireOption `xml:"Option"`
}

// wireOption is an extra option descriptor on a line item, e.g. a variant
// attribute. Options are concatenated into the display title.
type wireOption struct {
	Name  string `xml:"Name"`
	Value string `xml:"Value"`
}

// displayTitle builds the line item title with option descriptors appended
func (p *wireProduct) displayTitle() string {
	title := strings.TrimSpace(p.Name)
	if p.Options == nil || len(p.Options.Options) == 0 {
		return title
	}
	parts := make([]string, 0, len(p.Options.Options))
	for _, opt := range p.Options.Options {
		name := strings.TrimSpace(opt.Name)
		value := strings.TrimSpace(opt.Value)
		switch {
		case name != "" && value != "":
			parts = append(parts, name+": "+value)
		case value != "":
			parts = append(parts, value)
		case name != "":
			parts = append(parts, name)
		}
	}
	if len(parts) == 0 {
		return title
	}
	return title + " (" + strings.Join(parts, ", ") + ")"
}

// ParseDecimal parses a wire amount, returning zero for malformed input
func ParseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

package sync

import "time"

// OrderFilter selects which orders a remote fetch returns. A nil field means
// the selector is unrestricted; the legacy wire sentinel for "unrestricted"
// exists only inside the RPC client, never here.
type OrderFilter struct {
	// Status filters by legacy order state
	Status *OrderStatus
	// PaymentStatus filters by the legacy payment state code
	PaymentStatus *int
	// ShipmentStatus filters by the legacy shipment state code
	ShipmentStatus *int
	// SupplierID filters by supplier
	SupplierID *int
	// CampaignID filters by sales campaign
	CampaignID *int
	// StoreID filters by physical store
	StoreID *int
	// StartDate filters orders placed at or after this time
	StartDate *time.Time
	// EndDate filters orders placed at or before this time
	EndDate *time.Time
}

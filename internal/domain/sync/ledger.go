package sync

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Ledger Status
// ---------------------------------------------------------------------------

// LedgerStatus represents the outcome recorded for one transfer attempt
type LedgerStatus string

const (
	// LedgerStatusPending indicates an attempt that has not concluded yet
	LedgerStatusPending LedgerStatus = "pending"
	// LedgerStatusSynced indicates the order was created on the host platform
	LedgerStatusSynced LedgerStatus = "synced"
	// LedgerStatusFailed indicates the attempt failed; the order is retryable
	LedgerStatusFailed LedgerStatus = "failed"
)

// IsValid returns true if the status is valid
func (s LedgerStatus) IsValid() bool {
	switch s {
	case LedgerStatusPending, LedgerStatusSynced, LedgerStatusFailed:
		return true
	default:
		return false
	}
}

// String returns the string representation of LedgerStatus
func (s LedgerStatus) String() string {
	return string(s)
}

// ---------------------------------------------------------------------------
// Ledger Entry
// ---------------------------------------------------------------------------

// LedgerEntry is one row of the persisted sync ledger: a single transfer
// attempt for a (shop, source order number) pair. The ledger is append-only;
// a retry appends a new row, and the invariant "at most one synced row per
// key" is what prevents double import.
type LedgerEntry struct {
	// ID is the unique identifier of the ledger row
	ID uuid.UUID
	// Shop identifies the shop the order belongs to
	Shop string
	// OrderNumber is the source order number on the legacy service
	OrderNumber string
	// HostOrderID is the created host order identifier, empty on failure
	HostOrderID string
	// HostOrderName is the host order display name, empty on failure
	HostOrderName string
	// CustomerName is the resolved customer's display name
	CustomerName string
	// HostCustomerID is the resolved host customer identifier
	HostCustomerID string
	// TotalAmount is the recomputed order total
	TotalAmount decimal.Decimal
	// Status is the attempt outcome
	Status LedgerStatus
	// ErrorMessage carries the failure reason when Status is failed
	ErrorMessage string
	// RawOrder is a JSON snapshot of the fetched order, kept for replay/audit
	RawOrder string
	// CreatedAt is when the attempt was recorded
	CreatedAt time.Time
	// SyncedAt is when the host order was created, nil unless synced
	SyncedAt *time.Time
}

// NewLedgerEntry creates a pending ledger entry for a transfer attempt
func NewLedgerEntry(shop, orderNumber string) *LedgerEntry {
	return &LedgerEntry{
		ID:          uuid.New(),
		Shop:        shop,
		OrderNumber: orderNumber,
		Status:      LedgerStatusPending,
		CreatedAt:   time.Now(),
	}
}

// Validate checks the entry before it is persisted
func (e *LedgerEntry) Validate() error {
	if e.ID == uuid.Nil || e.Shop == "" || e.OrderNumber == "" {
		return ErrInvalidLedgerEntry
	}
	if !e.Status.IsValid() {
		return ErrInvalidLedgerEntry
	}
	return nil
}

// MarkSynced records a successful host order creation
func (e *LedgerEntry) MarkSynced(hostOrderID, hostOrderName string) {
	now := time.Now()
	e.Status = LedgerStatusSynced
	e.HostOrderID = hostOrderID
	e.HostOrderName = hostOrderName
	e.ErrorMessage = ""
	e.SyncedAt = &now
}

// MarkFailed records a failed attempt with the host error text
func (e *LedgerEntry) MarkFailed(reason string) {
	e.Status = LedgerStatusFailed
	e.ErrorMessage = reason
	e.SyncedAt = nil
}

// ---------------------------------------------------------------------------
// Ledger Repository Port
// ---------------------------------------------------------------------------

// LedgerRepository persists transfer attempts. Implementations are
// append-only: there is no update-in-place, consumers needing the current
// status of an order take the most recent row for its key.
type LedgerRepository interface {
	// Append inserts a new attempt row
	Append(ctx context.Context, entry *LedgerEntry) error

	// FindLatest returns the most recent row for the key, or shared.ErrNotFound
	FindLatest(ctx context.Context, shop, orderNumber string) (*LedgerEntry, error)

	// FindSynced returns the synced row for the key, or shared.ErrNotFound.
	// This is the duplicate-guard query.
	FindSynced(ctx context.Context, shop, orderNumber string) (*LedgerEntry, error)

	// List returns up to limit rows for a shop, newest first
	List(ctx context.Context, shop string, limit int) ([]LedgerEntry, error)

	// ListByStatus returns up to limit rows with the given status, newest first
	ListByStatus(ctx context.Context, shop string, status LedgerStatus, limit int) ([]LedgerEntry, error)

	// Delete removes a row; operators use this for manual cleanup
	Delete(ctx context.Context, id uuid.UUID) error
}

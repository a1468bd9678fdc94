package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ordersync/backend/internal/domain/sync"
)

// LedgerEntryModel is the persistence model for the sync.LedgerEntry domain entity.
type LedgerEntryModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key"`
	Shop           string          `gorm:"type:varchar(100);not null;index:idx_ledger_shop_order,priority:1"`
	OrderNumber    string          `gorm:"type:varchar(100);not null;index:idx_ledger_shop_order,priority:2"`
	HostOrderID    string          `gorm:"type:varchar(100)"`
	HostOrderName  string          `gorm:"type:varchar(100)"`
	CustomerName   string          `gorm:"type:varchar(255)"`
	HostCustomerID string          `gorm:"type:varchar(100)"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Status         string          `gorm:"type:varchar(20);not null;index:idx_ledger_status"`
	ErrorMessage   string          `gorm:"type:text"`
	RawOrder       string          `gorm:"type:text;column:raw_order"`
	CreatedAt      time.Time       `gorm:"not null;index:idx_ledger_created_at"`
	SyncedAt       *time.Time
}

// TableName returns the table name for GORM
func (LedgerEntryModel) TableName() string {
	return "sync_ledger_entries"
}

// ToDomain converts the persistence model to a domain LedgerEntry.
func (m *LedgerEntryModel) ToDomain() *sync.LedgerEntry {
	return &sync.LedgerEntry{
		ID:             m.ID,
		Shop:           m.Shop,
		OrderNumber:    m.OrderNumber,
		HostOrderID:    m.HostOrderID,
		HostOrderName:  m.HostOrderName,
		CustomerName:   m.CustomerName,
		HostCustomerID: m.HostCustomerID,
		TotalAmount:    m.TotalAmount,
		Status:         sync.LedgerStatus(m.Status),
		ErrorMessage:   m.ErrorMessage,
		RawOrder:       m.RawOrder,
		CreatedAt:      m.CreatedAt,
		SyncedAt:       m.SyncedAt,
	}
}

// FromDomain populates the persistence model from a domain LedgerEntry.
func (m *LedgerEntryModel) FromDomain(e *sync.LedgerEntry) {
	m.ID = e.ID
	m.Shop = e.Shop
	m.OrderNumber = e.OrderNumber
	m.HostOrderID = e.HostOrderID
	m.HostOrderName = e.HostOrderName
	m.CustomerName = e.CustomerName
	m.HostCustomerID = e.HostCustomerID
	m.TotalAmount = e.TotalAmount
	m.Status = e.Status.String()
	m.ErrorMessage = e.ErrorMessage
	m.RawOrder = e.RawOrder
	m.CreatedAt = e.CreatedAt
	m.SyncedAt = e.SyncedAt
}

// LedgerEntryModelFromDomain creates a new persistence model from a domain LedgerEntry.
func LedgerEntryModelFromDomain(e *sync.LedgerEntry) *LedgerEntryModel {
	m := &LedgerEntryModel{}
	m.FromDomain(e)
	return m
}

// ShopConnectionModel is the persistence model for the sync.ShopConnection domain entity.
type ShopConnectionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Shop        string    `gorm:"type:varchar(100);not null;uniqueIndex:udx_shop_connection_shop"`
	EndpointURL string    `gorm:"type:varchar(500);not null"`
	AuthCode    string    `gorm:"type:varchar(255);not null"`
	PageSize    int       `gorm:"not null;default:0"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ShopConnectionModel) TableName() string {
	return "shop_connections"
}

// ToDomain converts the persistence model to a domain ShopConnection.
func (m *ShopConnectionModel) ToDomain() *sync.ShopConnection {
	return &sync.ShopConnection{
		ID:          m.ID,
		Shop:        m.Shop,
		EndpointURL: m.EndpointURL,
		AuthCode:    m.AuthCode,
		PageSize:    m.PageSize,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// ShopConnectionModelFromDomain creates a new persistence model from a domain ShopConnection.
func ShopConnectionModelFromDomain(c *sync.ShopConnection) *ShopConnectionModel {
	return &ShopConnectionModel{
		ID:          c.ID,
		Shop:        c.Shop,
		EndpointURL: c.EndpointURL,
		AuthCode:    c.AuthCode,
		PageSize:    c.PageSize,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

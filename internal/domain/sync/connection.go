package sync

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// defaultPageSize is used when a shop connection does not override it
const defaultPageSize = 100

var validate = validator.New()

// ShopConnection holds the per-shop settings needed to reach the legacy
// service. It is owned and mutated by the surrounding application; this
// subsystem only reads it.
type ShopConnection struct {
	// ID is the unique identifier of the connection record
	ID uuid.UUID `validate:"required"`
	// Shop identifies the shop this connection belongs to
	Shop string `validate:"required"`
	// EndpointURL is the legacy service endpoint
	EndpointURL string `validate:"required,url"`
	// AuthCode is the integration credential sent with every request
	AuthCode string `validate:"required"`
	// PageSize overrides the fetch page size, 0 means default
	PageSize int `validate:"gte=0,lte=500"`
	// CreatedAt is when the connection was stored
	CreatedAt time.Time
	// UpdatedAt is when the connection was last changed
	UpdatedAt time.Time
}

// Validate checks the connection settings
func (c *ShopConnection) Validate() error {
	return validate.Struct(c)
}

// FetchPageSize returns the configured page size or the default
func (c *ShopConnection) FetchPageSize() int {
	if c.PageSize > 0 {
		return c.PageSize
	}
	return defaultPageSize
}

// ShopConnectionRepository persists per-shop connection settings
type ShopConnectionRepository interface {
	// FindByShop returns the connection for a shop, or ErrConfigMissing
	FindByShop(ctx context.Context, shop string) (*ShopConnection, error)

	// Save creates or updates a connection
	Save(ctx context.Context, conn *ShopConnection) error

	// Delete removes a connection
	Delete(ctx context.Context, id uuid.UUID) error
}

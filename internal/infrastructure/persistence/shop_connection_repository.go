package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ordersync/backend/internal/domain/shared"
	"github.com/ordersync/backend/internal/domain/sync"
	"github.com/ordersync/backend/internal/infrastructure/persistence/models"
)

// GormShopConnectionRepository implements ShopConnectionRepository using GORM
type GormShopConnectionRepository struct {
	db *gorm.DB
}

// NewGormShopConnectionRepository creates a new GormShopConnectionRepository
func NewGormShopConnectionRepository(db *gorm.DB) *GormShopConnectionRepository {
	return &GormShopConnectionRepository{db: db}
}

// FindByShop returns the connection settings for a shop. A missing record
// surfaces as ErrConfigMissing so callers can distinguish "not configured"
// from storage failures.
func (r *GormShopConnectionRepository) FindByShop(ctx context.Context, shop string) (*sync.ShopConnection, error) {
	var model models.ShopConnectionModel
	if err := r.db.WithContext(ctx).
		Where("shop = ?", shop).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", sync.ErrConfigMissing, shop)
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a connection
func (r *GormShopConnectionRepository) Save(ctx context.Context, conn *sync.ShopConnection) error {
	if err := conn.Validate(); err != nil {
		return err
	}
	model := models.ShopConnectionModelFromDomain(conn)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a connection
func (r *GormShopConnectionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ShopConnectionModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormShopConnectionRepository implements ShopConnectionRepository
var _ sync.ShopConnectionRepository = (*GormShopConnectionRepository)(nil)

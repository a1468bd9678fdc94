package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ordersync/backend/internal/domain/shared"
	"github.com/ordersync/backend/internal/domain/sync"
	"github.com/ordersync/backend/internal/infrastructure/persistence/models"
)

// defaultListLimit caps ledger listings when the caller passes no limit
const defaultListLimit = 100

// GormSyncLedgerRepository implements LedgerRepository using GORM
type GormSyncLedgerRepository struct {
	db *gorm.DB
}

// NewGormSyncLedgerRepository creates a new GormSyncLedgerRepository
func NewGormSyncLedgerRepository(db *gorm.DB) *GormSyncLedgerRepository {
	return &GormSyncLedgerRepository{db: db}
}

// Append inserts a new attempt row. The ledger is append-only; rows are
// never updated in place.
func (r *GormSyncLedgerRepository) Append(ctx context.Context, entry *sync.LedgerEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	model := models.LedgerEntryModelFromDomain(entry)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindLatest returns the most recent row for the (shop, order number) key
func (r *GormSyncLedgerRepository) FindLatest(ctx context.Context, shop, orderNumber string) (*sync.LedgerEntry, error) {
	var model models.LedgerEntryModel
	if err := r.db.WithContext(ctx).
		Where("shop = ? AND order_number = ?", shop, orderNumber).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindSynced returns the synced row for the (shop, order number) key. This
// is the duplicate-guard query; only a synced row blocks a re-import.
func (r *GormSyncLedgerRepository) FindSynced(ctx context.Context, shop, orderNumber string) (*sync.LedgerEntry, error) {
	var model models.LedgerEntryModel
	if err := r.db.WithContext(ctx).
		Where("shop = ? AND order_number = ? AND status = ?", shop, orderNumber, sync.LedgerStatusSynced.String()).
		Order("created_at DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns up to limit rows for a shop, newest first
func (r *GormSyncLedgerRepository) List(ctx context.Context, shop string, limit int) ([]sync.LedgerEntry, error) {
	return r.list(r.db.WithContext(ctx).Where("shop = ?", shop), limit)
}

// ListByStatus returns up to limit rows with the given status, newest first
func (r *GormSyncLedgerRepository) ListByStatus(ctx context.Context, shop string, status sync.LedgerStatus, limit int) ([]sync.LedgerEntry, error) {
	query := r.db.WithContext(ctx).Where("shop = ? AND status = ?", shop, status.String())
	return r.list(query, limit)
}

func (r *GormSyncLedgerRepository) list(query *gorm.DB, limit int) ([]sync.LedgerEntry, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	var entryModels []models.LedgerEntryModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Find(&entryModels).Error; err != nil {
		return nil, err
	}

	entries := make([]sync.LedgerEntry, len(entryModels))
	for i, model := range entryModels {
		entries[i] = *model.ToDomain()
	}
	return entries, nil
}

// Delete removes a ledger row. Operators use this for manual cleanup; among
// other things it is the only way to re-enable an import for a synced order.
func (r *GormSyncLedgerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.LedgerEntryModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormSyncLedgerRepository implements LedgerRepository
var _ sync.LedgerRepository = (*GormSyncLedgerRepository)(nil)

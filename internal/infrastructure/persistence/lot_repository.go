package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/businaro/backend/internal/domain/shared"
	"github.com/businaro/backend/internal/domain/warehouse"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormInventoryLotRepository implements InventoryLotRepository using GORM
type GormInventoryLotRepository struct {
	db *gorm.DB
}

// NewGormInventoryLotRepository creates a new GormInventoryLotRepository
func NewGormInventoryLotRepository(db *gorm.DB) *GormInventoryLotRepository {
	return &GormInventoryLotRepository{db: db}
}

// FindByIDForTenant finds a lot by ID within a tenant
func (r *GormInventoryLotRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*warehouse.InventoryLot, error) {
	var lot warehouse.InventoryLot
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&lot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &lot, nil
}

// FindByIDForUpdate finds a lot by ID within a tenant and acquires a row lock
// on it with SELECT ... FOR UPDATE. Concurrent callers serialize here, so the
// quantity check that follows sees the committed state of the row.
func (r *GormInventoryLotRepository) FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*warehouse.InventoryLot, error) {
	var lot warehouse.InventoryLot
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&lot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &lot, nil
}

// FindByMergeKey finds the single lot matching the merge key. Batch and
// serial numbers compare NULL-aware: a nil key field matches only rows where
// the column is NULL.
func (r *GormInventoryLotRepository) FindByMergeKey(ctx context.Context, tenantID uuid.UUID, key warehouse.LotMergeKey) (*warehouse.InventoryLot, error) {
	query := r.db.WithContext(ctx).
		Where("tenant_id = ? AND product_id = ? AND location_id = ? AND status = ? AND condition = ?",
			tenantID, key.ProductID, key.LocationID, key.Status, key.Condition)

	if key.BatchNumber != nil {
		query = query.Where("batch_number = ?", *key.BatchNumber)
	} else {
		query = query.Where("batch_number IS NULL")
	}
	if key.SerialNumber != nil {
		query = query.Where("serial_number = ?", *key.SerialNumber)
	} else {
		query = query.Where("serial_number IS NULL")
	}

	var lot warehouse.InventoryLot
	if err := query.First(&lot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &lot, nil
}

// FindByProduct finds all lots for a product within a tenant
func (r *GormInventoryLotRepository) FindByProduct(ctx context.Context, tenantID, productID uuid.UUID, filter shared.Filter) ([]warehouse.InventoryLot, error) {
	var lots []warehouse.InventoryLot
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&warehouse.InventoryLot{}).
			Where("tenant_id = ? AND product_id = ?", tenantID, productID),
		filter,
	)

	if err := query.Find(&lots).Error; err != nil {
		return nil, err
	}
	return lots, nil
}

// Create inserts a new lot
func (r *GormInventoryLotRepository) Create(ctx context.Context, lot *warehouse.InventoryLot) error {
	return r.db.WithContext(ctx).Create(lot).Error
}

// SaveWithLock saves lot mutations with optimistic locking (checks version).
// It writes only quantity, status, condition, version and updated_at; the
// identity and merge-key columns (product, location, batch, serial) are fixed
// at creation, so a mutator that starts changing them must extend this map.
func (r *GormInventoryLotRepository) SaveWithLock(ctx context.Context, lot *warehouse.InventoryLot) error {
	result := r.db.WithContext(ctx).
		Model(lot).
		Where("id = ? AND version = ?", lot.ID, lot.Version-1).
		Updates(map[string]interface{}{
			"quantity":   lot.Quantity,
			"status":     lot.Status,
			"condition":  lot.Condition,
			"version":    lot.Version,
			"updated_at": lot.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NewConflictError("OPTIMISTIC_LOCK_FAILED", "Inventory lot was modified by another transaction")
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormInventoryLotRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "location_id":
			query = query.Where("location_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "condition":
			query = query.Where("condition = ?", value)
		case "non_empty":
			if value == true {
				query = query.Where("quantity > 0")
			}
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("created_at DESC")
	}

	return query
}

var _ warehouse.InventoryLotRepository = (*GormInventoryLotRepository)(nil)

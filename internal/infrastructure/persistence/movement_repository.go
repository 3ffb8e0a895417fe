package persistence

import (
	"context"

	"github.com/businaro/backend/internal/domain/shared"
	"github.com/businaro/backend/internal/domain/warehouse"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStockMovementRepository implements StockMovementRepository using GORM.
// The movements table is append-only: the repository exposes no update or
// delete path and none exists elsewhere.
type GormStockMovementRepository struct {
	db *gorm.DB
}

// NewGormStockMovementRepository creates a new GormStockMovementRepository
func NewGormStockMovementRepository(db *gorm.DB) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db}
}

// Create appends a movement record
func (r *GormStockMovementRepository) Create(ctx context.Context, movement *warehouse.StockMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

// FindByLot returns the movement history of a lot, most recent first
func (r *GormStockMovementRepository) FindByLot(ctx context.Context, tenantID, lotID uuid.UUID, filter shared.Filter) ([]warehouse.StockMovement, error) {
	var movements []warehouse.StockMovement
	query := r.db.WithContext(ctx).Model(&warehouse.StockMovement{}).
		Where("tenant_id = ? AND lot_id = ?", tenantID, lotID)

	for key, value := range filter.Filters {
		switch key {
		case "reason":
			query = query.Where("reason = ?", value)
		case "job_order_id":
			query = query.Where("job_order_id = ?", value)
		case "operator_id":
			query = query.Where("operator_id = ?", value)
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Order("movement_date DESC").Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// CountByLot counts the movements recorded for a lot
func (r *GormStockMovementRepository) CountByLot(ctx context.Context, tenantID, lotID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&warehouse.StockMovement{}).
		Where("tenant_id = ? AND lot_id = ?", tenantID, lotID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

var _ warehouse.StockMovementRepository = (*GormStockMovementRepository)(nil)

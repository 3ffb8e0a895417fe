package warehouse

import (
	"strings"

	"github.com/businaro/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Warehouse represents a named storage facility. At most one warehouse per
// tenant is flagged as the quarantine facility. The ledger engine treats
// warehouses as read-only reference data.
type Warehouse struct {
	shared.TenantAggregateRoot
	Name         string `gorm:"type:varchar(100);not null"`
	IsQuarantine bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Warehouse) TableName() string {
	return "warehouses"
}

// NewWarehouse creates a new warehouse
func NewWarehouse(tenantID uuid.UUID, name string, isQuarantine bool) (*Warehouse, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("INVALID_NAME", "Warehouse name cannot be empty")
	}
	return &Warehouse{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		IsQuarantine:        isQuarantine,
	}, nil
}

// Location is a sub-location within a warehouse (aisle/bin code). A location
// may be orphaned from a warehouse, in which case WarehouseID is nil.
type Location struct {
	shared.TenantAggregateRoot
	// Tenant-scoped code uniqueness is enforced by idx_location_tenant_code
	// in the SQL migration.
	Code        string     `gorm:"type:varchar(50);not null;index"`
	Description string     `gorm:"type:varchar(200)"`
	WarehouseID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName returns the table name for GORM
func (Location) TableName() string {
	return "locations"
}

// NewLocation creates a new location, optionally attached to a warehouse
func NewLocation(tenantID uuid.UUID, code string, warehouseID *uuid.UUID) (*Location, error) {
	if strings.TrimSpace(code) == "" {
		return nil, shared.NewValidationError("INVALID_CODE", "Location code cannot be empty")
	}
	return &Location{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                strings.ToUpper(code),
		WarehouseID:         warehouseID,
	}, nil
}

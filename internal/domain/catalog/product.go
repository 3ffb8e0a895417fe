package catalog

import (
	"strings"

	"github.com/businaro/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductType classifies a catalog entry within the production flow.
type ProductType string

const (
	ProductTypeRawMaterial  ProductType = "RAW_MATERIAL"
	ProductTypeSemiFinished ProductType = "SEMI_FINISHED"
	ProductTypeFinished     ProductType = "FINISHED"
	ProductTypeCommercial   ProductType = "COMMERCIAL"
)

// String returns the string representation of the product type
func (t ProductType) String() string {
	return string(t)
}

// IsValid returns true if the product type is valid
func (t ProductType) IsValid() bool {
	switch t {
	case ProductTypeRawMaterial, ProductTypeSemiFinished, ProductTypeFinished, ProductTypeCommercial:
		return true
	}
	return false
}

// Product represents a catalog entry identified by a unique SKU.
// Once referenced by inventory lots it is treated as immutable by the
// warehouse engine; catalog management owns its lifecycle.
type Product struct {
	shared.TenantAggregateRoot
	// Tenant-scoped SKU uniqueness is enforced by idx_product_tenant_sku in
	// the SQL migration.
	SKU         string          `gorm:"type:varchar(50);not null;index"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Type        ProductType     `gorm:"type:varchar(30);not null"`
	Unit        string          `gorm:"type:varchar(20);not null"` // Base unit (e.g., "pcs", "kg", "m")
	MinStock    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product
func NewProduct(tenantID uuid.UUID, sku, name string, productType ProductType, unit string) (*Product, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return nil, shared.NewValidationError("INVALID_SKU", "Product SKU cannot be empty")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewValidationError("INVALID_NAME", "Product name cannot be empty")
	}
	if !productType.IsValid() {
		return nil, shared.NewValidationError("INVALID_PRODUCT_TYPE", "Invalid product type: "+string(productType))
	}
	if strings.TrimSpace(unit) == "" {
		return nil, shared.NewValidationError("INVALID_UNIT", "Unit of measure cannot be empty")
	}

	return &Product{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		SKU:                 strings.ToUpper(sku),
		Name:                name,
		Type:                productType,
		Unit:                unit,
		MinStock:            decimal.Zero,
	}, nil
}

// SetMinStock sets the minimum stock level for replenishment alerts
func (p *Product) SetMinStock(quantity decimal.Decimal) error {
	if quantity.IsNegative() {
		return shared.NewValidationError("INVALID_QUANTITY", "Minimum stock cannot be negative")
	}
	p.MinStock = quantity
	p.Touch()
	p.IncrementVersion()
	return nil
}

// IsTransformable returns true if lots of this product may be consumed or
// produced by a production transformation.
func (p *Product) IsTransformable() bool {
	return p.Type == ProductTypeRawMaterial || p.Type == ProductTypeSemiFinished
}

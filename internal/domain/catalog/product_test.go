package catalog

import (
	"reflect"
	"testing"

	"github.com/businaro/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates valid product", func(t *testing.T) {
		product, err := NewProduct(tenantID, "rm-001", "Steel Rod 8mm", ProductTypeRawMaterial, "kg")
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, product.ID)
		assert.Equal(t, tenantID, product.TenantID)
		assert.Equal(t, "RM-001", product.SKU, "SKU is normalized to upper case")
		assert.Equal(t, ProductTypeRawMaterial, product.Type)
		assert.Equal(t, "kg", product.Unit)
		assert.True(t, product.MinStock.IsZero())
		assert.Equal(t, 1, product.Version)
	})

	t.Run("rejects empty SKU", func(t *testing.T) {
		_, err := NewProduct(tenantID, "  ", "Steel Rod", ProductTypeRawMaterial, "kg")
		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct(tenantID, "RM-001", "", ProductTypeRawMaterial, "kg")
		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})

	t.Run("rejects unknown product type", func(t *testing.T) {
		_, err := NewProduct(tenantID, "RM-001", "Steel Rod", ProductType("GADGET"), "kg")
		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})

	t.Run("rejects empty unit", func(t *testing.T) {
		_, err := NewProduct(tenantID, "RM-001", "Steel Rod", ProductTypeRawMaterial, "")
		require.Error(t, err)
		assert.True(t, shared.IsValidation(err))
	})
}

func TestProductType_IsValid(t *testing.T) {
	valid := []ProductType{ProductTypeRawMaterial, ProductTypeSemiFinished, ProductTypeFinished, ProductTypeCommercial}
	for _, pt := range valid {
		assert.True(t, pt.IsValid(), pt.String())
	}
	assert.False(t, ProductType("UNKNOWN").IsValid())
	assert.False(t, ProductType("").IsValid())
}

func TestProduct_SetMinStock(t *testing.T) {
	product, err := NewProduct(uuid.New(), "SF-010", "Bracket", ProductTypeSemiFinished, "pcs")
	require.NoError(t, err)

	require.NoError(t, product.SetMinStock(decimal.NewFromInt(25)))
	assert.True(t, product.MinStock.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, 2, product.Version)

	err = product.SetMinStock(decimal.NewFromInt(-1))
	require.Error(t, err)
	assert.True(t, shared.IsValidation(err))
}

func TestProduct_IsTransformable(t *testing.T) {
	tenantID := uuid.New()

	raw, _ := NewProduct(tenantID, "RM-001", "Steel Rod", ProductTypeRawMaterial, "kg")
	semi, _ := NewProduct(tenantID, "SF-001", "Bracket", ProductTypeSemiFinished, "pcs")
	finished, _ := NewProduct(tenantID, "FP-001", "Machine", ProductTypeFinished, "pcs")
	commercial, _ := NewProduct(tenantID, "CC-001", "Bolt M6", ProductTypeCommercial, "pcs")

	assert.True(t, raw.IsTransformable())
	assert.True(t, semi.IsTransformable())
	assert.False(t, finished.IsTransformable())
	assert.False(t, commercial.IsTransformable())
}

func TestProduct_ModelTags(t *testing.T) {
	t.Run("declares no unique index, the migration owns tenant-scoped SKU uniqueness", func(t *testing.T) {
		typ := reflect.TypeOf(Product{})
		for i := 0; i < typ.NumField(); i++ {
			field := typ.Field(i)
			assert.NotContains(t, field.Tag.Get("gorm"), "uniqueIndex",
				"field %s must not declare a unique index; a tag index would omit tenant_id", field.Name)
		}
	})
}

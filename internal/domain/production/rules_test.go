package production

import (
	"testing"

	"github.com/businaro/backend/internal/domain/catalog"
	"github.com/businaro/backend/internal/domain/identity"
	"github.com/stretchr/testify/assert"
)

func TestDefaultRules_Departments(t *testing.T) {
	rules := DefaultRules()

	assert.True(t, rules.IsDepartmentAllowed(identity.DepartmentMachineTools))
	assert.True(t, rules.IsDepartmentAllowed(identity.DepartmentAdmin))
	assert.False(t, rules.IsDepartmentAllowed(identity.DepartmentWarehouse))
	assert.False(t, rules.IsDepartmentAllowed(identity.DepartmentTechOffice))
	assert.False(t, rules.IsDepartmentAllowed(identity.Department("UNKNOWN")))
}

func TestDefaultRules_TransformationMatrix(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name    string
		source  catalog.ProductType
		target  catalog.ProductType
		allowed bool
	}{
		{"raw material to semi-finished", catalog.ProductTypeRawMaterial, catalog.ProductTypeSemiFinished, true},
		{"semi-finished rework", catalog.ProductTypeSemiFinished, catalog.ProductTypeSemiFinished, true},
		{"raw material to finished", catalog.ProductTypeRawMaterial, catalog.ProductTypeFinished, false},
		{"raw material to raw material", catalog.ProductTypeRawMaterial, catalog.ProductTypeRawMaterial, false},
		{"semi-finished to finished", catalog.ProductTypeSemiFinished, catalog.ProductTypeFinished, false},
		{"finished to raw material", catalog.ProductTypeFinished, catalog.ProductTypeRawMaterial, false},
		{"finished to semi-finished", catalog.ProductTypeFinished, catalog.ProductTypeSemiFinished, false},
		{"commercial to semi-finished", catalog.ProductTypeCommercial, catalog.ProductTypeSemiFinished, false},
		{"semi-finished to commercial", catalog.ProductTypeSemiFinished, catalog.ProductTypeCommercial, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, rules.IsTransformationAllowed(tt.source, tt.target))
		})
	}
}

func TestStaticRules_CustomMatrix(t *testing.T) {
	rules := &StaticRules{
		AllowedDepartments: map[identity.Department]bool{
			identity.DepartmentProduction: true,
		},
		Matrix: map[catalog.ProductType][]catalog.ProductType{
			catalog.ProductTypeSemiFinished: {catalog.ProductTypeFinished},
		},
	}

	assert.True(t, rules.IsDepartmentAllowed(identity.DepartmentProduction))
	assert.False(t, rules.IsDepartmentAllowed(identity.DepartmentMachineTools))
	assert.True(t, rules.IsTransformationAllowed(catalog.ProductTypeSemiFinished, catalog.ProductTypeFinished))
	assert.False(t, rules.IsTransformationAllowed(catalog.ProductTypeRawMaterial, catalog.ProductTypeSemiFinished))
}

package production

import (
	"github.com/businaro/backend/internal/domain/catalog"
	"github.com/businaro/backend/internal/domain/identity"
)

// Rules parameterizes the transformation engine: which departments may run
// transformations and which product-type conversions are legal.
// Implementations are injected by the composition root, hold no mutable
// state and are safe for concurrent use; all predicates are total.
type Rules interface {
	// IsDepartmentAllowed reports whether the operator's department may run
	// transformations
	IsDepartmentAllowed(department identity.Department) bool

	// IsTransformationAllowed reports whether converting source type into
	// target type is legal
	IsTransformationAllowed(source, target catalog.ProductType) bool
}

// StaticRules is a fixed-configuration Rules implementation.
type StaticRules struct {
	AllowedDepartments map[identity.Department]bool
	// Matrix lists the legal target types per source type
	Matrix map[catalog.ProductType][]catalog.ProductType
}

// DefaultRules returns the standard production policy: only the machine
// tools department (and admins) may transform, raw material converts to
// semi-finished and semi-finished reworks into semi-finished. Nothing
// converts into or out of finished or commercial types.
func DefaultRules() *StaticRules {
	return &StaticRules{
		AllowedDepartments: map[identity.Department]bool{
			identity.DepartmentMachineTools: true,
			identity.DepartmentAdmin:        true,
		},
		Matrix: map[catalog.ProductType][]catalog.ProductType{
			catalog.ProductTypeRawMaterial:  {catalog.ProductTypeSemiFinished},
			catalog.ProductTypeSemiFinished: {catalog.ProductTypeSemiFinished},
		},
	}
}

// IsDepartmentAllowed implements Rules
func (r *StaticRules) IsDepartmentAllowed(department identity.Department) bool {
	return r.AllowedDepartments[department]
}

// IsTransformationAllowed implements Rules
func (r *StaticRules) IsTransformationAllowed(source, target catalog.ProductType) bool {
	for _, allowed := range r.Matrix[source] {
		if allowed == target {
			return true
		}
	}
	return false
}

var _ Rules = (*StaticRules)(nil)

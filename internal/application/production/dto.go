package production

import (
	"github.com/businaro/backend/internal/domain/identity"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransformCommand requests a manufacturing conversion: consume quantity from
// the source lot and produce the same quantity of the target product at the
// source lot's location. OperatorID and OperatorDepartment are resolved by
// the caller from the authenticated session.
type TransformCommand struct {
	JobOrderID         uuid.UUID           `json:"job_order_id" validate:"required"`
	SourceSKU          string              `json:"source_sku" validate:"required"`
	TargetSKU          string              `json:"target_sku" validate:"required"`
	Quantity           decimal.Decimal     `json:"quantity" validate:"required,gt=0"`
	SourceLotID        uuid.UUID           `json:"source_lot_id" validate:"required"`
	OperatorID         uuid.UUID           `json:"operator_id" validate:"required"`
	OperatorDepartment identity.Department `json:"operator_department" validate:"required"`
}

// TransformResult is the projection returned by a successful transformation
type TransformResult struct {
	SourceLotID    uuid.UUID       `json:"source_lot_id"`
	TargetLotID    uuid.UUID       `json:"target_lot_id"`
	TargetQuantity decimal.Decimal `json:"target_quantity"`
}

package warehouse

import (
	"reflect"
	"time"

	"github.com/businaro/backend/internal/domain/warehouse"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewCommandValidator builds the validator used for engine commands. Decimal
// quantities are registered as a custom type so numeric tags (gt, gte) apply
// to them.
func NewCommandValidator() *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// PickCommand requests consumption of stock from a lot for a job order.
// OperatorID is resolved by the caller from the authenticated session.
type PickCommand struct {
	JobOrderID *uuid.UUID      `json:"job_order_id"`
	SKU        string          `json:"sku" validate:"required"`
	Quantity   decimal.Decimal `json:"quantity" validate:"required,gt=0"`
	LotID      uuid.UUID       `json:"lot_id" validate:"required"`
	OperatorID uuid.UUID       `json:"operator_id" validate:"required"`
}

// PickResult is the projection returned by a successful pick
type PickResult struct {
	LotID       uuid.UUID       `json:"lot_id"`
	NewQuantity decimal.Decimal `json:"new_quantity"`
}

// QuarantineInCommand forces a lot back into quarantine
type QuarantineInCommand struct {
	SKU        string                 `json:"sku" validate:"required"`
	Quantity   decimal.Decimal        `json:"quantity" validate:"required,gt=0"`
	Condition  warehouse.LotCondition `json:"condition" validate:"required"`
	LotID      uuid.UUID              `json:"lot_id" validate:"required"`
	OperatorID uuid.UUID              `json:"operator_id" validate:"required"`
}

// QuarantineDecisionCommand records the outcome of a quarantine inspection
type QuarantineDecisionCommand struct {
	LotID      uuid.UUID                    `json:"lot_id" validate:"required"`
	Decision   warehouse.QuarantineDecision `json:"decision" validate:"required"`
	OperatorID uuid.UUID                    `json:"operator_id" validate:"required"`
}

// StatusResult is the projection returned by status-changing operations
type StatusResult struct {
	LotID  uuid.UUID           `json:"lot_id"`
	Status warehouse.LotStatus `json:"status"`
}

// LotResponse is the read projection of an inventory lot
type LotResponse struct {
	ID           uuid.UUID              `json:"id"`
	ProductID    uuid.UUID              `json:"product_id"`
	LocationID   uuid.UUID              `json:"location_id"`
	BatchNumber  *string                `json:"batch_number,omitempty"`
	SerialNumber *string                `json:"serial_number,omitempty"`
	Status       warehouse.LotStatus    `json:"status"`
	Condition    warehouse.LotCondition `json:"condition"`
	Quantity     decimal.Decimal        `json:"quantity"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

// ToLotResponse converts a domain lot to its read projection
func ToLotResponse(lot *warehouse.InventoryLot) LotResponse {
	return LotResponse{
		ID:           lot.ID,
		ProductID:    lot.ProductID,
		LocationID:   lot.LocationID,
		BatchNumber:  lot.BatchNumber,
		SerialNumber: lot.SerialNumber,
		Status:       lot.Status,
		Condition:    lot.Condition,
		Quantity:     lot.Quantity,
		UpdatedAt:    lot.UpdatedAt,
	}
}

// MovementResponse is the read projection of a stock movement
type MovementResponse struct {
	ID           uuid.UUID                `json:"id"`
	LotID        *uuid.UUID               `json:"lot_id,omitempty"`
	ProductID    *uuid.UUID               `json:"product_id,omitempty"`
	JobOrderID   *uuid.UUID               `json:"job_order_id,omitempty"`
	Delta        decimal.Decimal          `json:"delta"`
	FromStatus   *warehouse.LotStatus     `json:"from_status,omitempty"`
	ToStatus     *warehouse.LotStatus     `json:"to_status,omitempty"`
	Reason       warehouse.MovementReason `json:"reason"`
	OperatorID   uuid.UUID                `json:"operator_id"`
	MovementDate time.Time                `json:"movement_date"`
}

// ToMovementResponses converts domain movements to read projections
func ToMovementResponses(movements []warehouse.StockMovement) []MovementResponse {
	responses := make([]MovementResponse, 0, len(movements))
	for i := range movements {
		m := &movements[i]
		responses = append(responses, MovementResponse{
			ID:           m.ID,
			LotID:        m.LotID,
			ProductID:    m.ProductID,
			JobOrderID:   m.JobOrderID,
			Delta:        m.Delta,
			FromStatus:   m.FromStatus,
			ToStatus:     m.ToStatus,
			Reason:       m.Reason,
			OperatorID:   m.OperatorID,
			MovementDate: m.MovementDate,
		})
	}
	return responses
}

package warehouse

import (
	"time"

	"github.com/businaro/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementReason is the business event a stock movement documents
type MovementReason string

const (
	ReasonPicking              MovementReason = "PICKING"
	ReasonReturnToQuarantine   MovementReason = "RETURN_TO_QUARANTINE"
	ReasonQCApproved           MovementReason = "QC_APPROVED"
	ReasonQCRejected           MovementReason = "QC_REJECTED"
	ReasonTransformationInput  MovementReason = "TRANSFORMATION_INPUT"
	ReasonTransformationOutput MovementReason = "TRANSFORMATION_OUTPUT"
)

// String returns the string representation of the movement reason
func (r MovementReason) String() string {
	return string(r)
}

// IsValid returns true if the reason is a known value
func (r MovementReason) IsValid() bool {
	switch r {
	case ReasonPicking,
		ReasonReturnToQuarantine,
		ReasonQCApproved,
		ReasonQCRejected,
		ReasonTransformationInput,
		ReasonTransformationOutput:
		return true
	}
	return false
}

// StockMovement is an append-only audit record of one quantity or status
// change to an inventory lot. Every mutation the ledger engine performs is
// paired with exactly one movement in the same transaction; movements are
// never updated or deleted, so replaying them reconstructs the full lot
// history.
//
// Delta is negative for consumption, zero for pure status transitions and
// positive for production output. FromStatus/ToStatus carry the transition
// when the movement represents one; for quantity-only changes both hold the
// unchanged status.
type StockMovement struct {
	shared.BaseEntity
	TenantID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_movement_tenant_time,priority:1"`
	LotID        *uuid.UUID      `gorm:"type:uuid;index"`
	ProductID    *uuid.UUID      `gorm:"type:uuid;index"`
	JobOrderID   *uuid.UUID      `gorm:"type:uuid;index"`
	Delta        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	FromStatus   *LotStatus      `gorm:"type:varchar(20)"`
	ToStatus     *LotStatus      `gorm:"type:varchar(20)"`
	Reason       MovementReason  `gorm:"type:varchar(40);not null;index"`
	OperatorID   uuid.UUID       `gorm:"type:uuid;not null"`
	MovementDate time.Time       `gorm:"type:timestamptz;not null;index:idx_movement_tenant_time,priority:2"`
}

// TableName returns the table name for GORM
func (StockMovement) TableName() string {
	return "stock_movements"
}

// NewStockMovement creates a new stock movement record
func NewStockMovement(
	tenantID uuid.UUID,
	lotID uuid.UUID,
	productID uuid.UUID,
	delta decimal.Decimal,
	fromStatus, toStatus LotStatus,
	reason MovementReason,
	operatorID uuid.UUID,
) (*StockMovement, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_TENANT", "Tenant ID cannot be empty")
	}
	if lotID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_LOT", "Lot ID cannot be empty")
	}
	if !reason.IsValid() {
		return nil, shared.NewValidationError("INVALID_REASON", "Invalid movement reason: "+string(reason))
	}
	if operatorID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_OPERATOR", "Operator ID cannot be empty")
	}

	m := &StockMovement{
		BaseEntity:   shared.NewBaseEntity(),
		TenantID:     tenantID,
		LotID:        &lotID,
		Delta:        delta.Round(4),
		FromStatus:   &fromStatus,
		ToStatus:     &toStatus,
		Reason:       reason,
		OperatorID:   operatorID,
		MovementDate: time.Now(),
	}
	if productID != uuid.Nil {
		m.ProductID = &productID
	}
	return m, nil
}

// WithJobOrder correlates the movement with an external job order
func (m *StockMovement) WithJobOrder(jobOrderID uuid.UUID) *StockMovement {
	if jobOrderID != uuid.Nil {
		m.JobOrderID = &jobOrderID
	}
	return m
}

// IsStatusTransition returns true if the movement documents a status change
func (m *StockMovement) IsStatusTransition() bool {
	return m.FromStatus != nil && m.ToStatus != nil && *m.FromStatus != *m.ToStatus
}

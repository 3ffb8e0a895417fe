package warehouse

import (
	"fmt"

	"github.com/businaro/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LotStatus represents the lifecycle status of an inventory lot
type LotStatus string

const (
	// LotStatusAvailable marks stock that can be picked or transformed
	LotStatusAvailable LotStatus = "AVAILABLE"
	// LotStatusReserved marks stock committed to a job order but not yet consumed
	LotStatusReserved LotStatus = "RESERVED"
	// LotStatusQuarantine marks stock held for inspection
	LotStatusQuarantine LotStatus = "QUARANTINE"
	// LotStatusScrap marks rejected stock; terminal, no transition leads out of it
	LotStatusScrap LotStatus = "SCRAP"
)

// String returns the string representation of the lot status
func (s LotStatus) String() string {
	return string(s)
}

// IsValid returns true if the lot status is a known value
func (s LotStatus) IsValid() bool {
	switch s {
	case LotStatusAvailable, LotStatusReserved, LotStatusQuarantine, LotStatusScrap:
		return true
	}
	return false
}

// LotCondition grades the physical condition of the stock in a lot
type LotCondition string

const (
	LotConditionNew     LotCondition = "NEW"
	LotConditionDamaged LotCondition = "DAMAGED"
)

// String returns the string representation of the lot condition
func (c LotCondition) String() string {
	return string(c)
}

// IsValid returns true if the lot condition is a known value
func (c LotCondition) IsValid() bool {
	return c == LotConditionNew || c == LotConditionDamaged
}

// QuarantineDecision is the outcome of a quarantine inspection
type QuarantineDecision string

const (
	QuarantineApprove QuarantineDecision = "APPROVE"
	QuarantineReject  QuarantineDecision = "REJECT"
)

// IsValid returns true if the decision is a known value
func (d QuarantineDecision) IsValid() bool {
	return d == QuarantineApprove || d == QuarantineReject
}

// TargetStatus maps the inspection decision to the resulting lot status
func (d QuarantineDecision) TargetStatus() LotStatus {
	if d == QuarantineApprove {
		return LotStatusAvailable
	}
	return LotStatusScrap
}

// InventoryLot is the central mutable entity of the stock ledger: a quantity
// of one product, at one location, in one status and condition. The tuple
// (tenant, product, location, batch, serial, status, condition) is unique and
// serves as the merge key when a transformation resolves its destination.
//
// A lot whose quantity reaches zero is deliberately kept in place, fully
// traceable through its movement history, rather than deleted.
type InventoryLot struct {
	// Merge-key uniqueness lives in the idx_lot_merge_key index created by
	// the SQL migration: it includes tenant_id and COALESCEs batch and
	// serial so NULLs compare equal, which gorm tags cannot express.
	shared.TenantAggregateRoot
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	LocationID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	BatchNumber  *string         `gorm:"type:varchar(50)"`
	SerialNumber *string         `gorm:"type:varchar(50)"`
	Status       LotStatus       `gorm:"type:varchar(20);not null;index"`
	Condition    LotCondition    `gorm:"type:varchar(20);not null"`
	Quantity     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`

	Product *Product `gorm:"-"` // populated by repository loads that join the product
}

// Product is a narrow projection of the catalog product a lot references.
// The engine loads exactly the fields its checks need instead of a lazy
// entity graph.
type Product struct {
	ID   uuid.UUID
	SKU  string
	Type string
}

// TableName returns the table name for GORM
func (InventoryLot) TableName() string {
	return "inventory_lots"
}

// NewInventoryLot creates a new lot for a product at a location
func NewInventoryLot(
	tenantID, productID, locationID uuid.UUID,
	quantity decimal.Decimal,
	status LotStatus,
	condition LotCondition,
	batchNumber, serialNumber *string,
) (*InventoryLot, error) {
	if productID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_PRODUCT", "Product ID cannot be empty")
	}
	if locationID == uuid.Nil {
		return nil, shared.NewValidationError("INVALID_LOCATION", "Location ID cannot be empty")
	}
	if quantity.IsNegative() {
		return nil, shared.NewValidationError("INVALID_QUANTITY", "Lot quantity cannot be negative")
	}
	if !status.IsValid() {
		return nil, shared.NewValidationError("INVALID_STATUS", "Invalid lot status: "+string(status))
	}
	if !condition.IsValid() {
		return nil, shared.NewValidationError("INVALID_CONDITION", "Invalid lot condition: "+string(condition))
	}

	return &InventoryLot{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		ProductID:           productID,
		LocationID:          locationID,
		BatchNumber:         batchNumber,
		SerialNumber:        serialNumber,
		Status:              status,
		Condition:           condition,
		Quantity:            quantity.Round(4),
	}, nil
}

// CanFulfill returns true if the lot quantity can cover the requested quantity
func (l *InventoryLot) CanFulfill(quantity decimal.Decimal) bool {
	return l.Quantity.GreaterThanOrEqual(quantity)
}

// Consume decrements the lot quantity. The status is intentionally left
// unchanged even when the quantity reaches zero: a depleted lot stays
// traceable instead of transitioning to a synthetic "depleted" state.
func (l *InventoryLot) Consume(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewValidationError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if l.Quantity.LessThan(quantity) {
		return shared.NewValidationError("INSUFFICIENT_QUANTITY",
			fmt.Sprintf("Insufficient quantity in lot: requested %s, available %s",
				quantity.String(), l.Quantity.String()))
	}

	l.Quantity = l.Quantity.Sub(quantity)
	l.Touch()
	l.IncrementVersion()
	return nil
}

// Receive increments the lot quantity (production output merging into an
// existing destination lot).
func (l *InventoryLot) Receive(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewValidationError("INVALID_QUANTITY", "Quantity must be positive")
	}

	l.Quantity = l.Quantity.Add(quantity)
	l.Touch()
	l.IncrementVersion()
	return nil
}

// MoveToQuarantine forces the lot into QUARANTINE regardless of its current
// status. This is the "return to quarantine" override action and is the one
// transition not gated on the current state. It returns the previous status
// for the movement record.
func (l *InventoryLot) MoveToQuarantine() LotStatus {
	previous := l.Status
	l.Status = LotStatusQuarantine
	l.Touch()
	l.IncrementVersion()
	return previous
}

// ApplyQuarantineDecision transitions a quarantined lot to the status mapped
// from the inspection decision: APPROVE restores it to AVAILABLE, REJECT
// scraps it.
func (l *InventoryLot) ApplyQuarantineDecision(decision QuarantineDecision) error {
	if !decision.IsValid() {
		return shared.NewValidationError("INVALID_DECISION", "Decision must be APPROVE or REJECT")
	}
	if l.Status != LotStatusQuarantine {
		return shared.NewValidationError("LOT_NOT_IN_QUARANTINE",
			fmt.Sprintf("Lot %s is not in quarantine (status %s)", l.ID, l.Status))
	}

	l.Status = decision.TargetStatus()
	l.Touch()
	l.IncrementVersion()
	return nil
}

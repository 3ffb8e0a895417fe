package warehouse

import (
	"context"

	"github.com/businaro/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// LotMergeKey identifies the unique lot a transformation output merges into:
// same product, location, batch, serial, status and condition.
type LotMergeKey struct {
	ProductID    uuid.UUID
	LocationID   uuid.UUID
	BatchNumber  *string
	SerialNumber *string
	Status       LotStatus
	Condition    LotCondition
}

// InventoryLotRepository defines the interface for inventory lot persistence
type InventoryLotRepository interface {
	// FindByIDForTenant finds a lot by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*InventoryLot, error)

	// FindByIDForUpdate finds a lot by ID within a tenant and acquires a row
	// lock on it. Must be called inside a transaction; the lock is held until
	// the transaction commits or rolls back.
	FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*InventoryLot, error)

	// FindByMergeKey finds the lot matching the merge key, or
	// shared.ErrNotFound when no such lot exists
	FindByMergeKey(ctx context.Context, tenantID uuid.UUID, key LotMergeKey) (*InventoryLot, error)

	// FindByProduct finds all lots for a product within a tenant
	FindByProduct(ctx context.Context, tenantID, productID uuid.UUID, filter shared.Filter) ([]InventoryLot, error)

	// Create inserts a new lot
	Create(ctx context.Context, lot *InventoryLot) error

	// SaveWithLock persists lot mutations with an optimistic version check;
	// returns a conflict error when the row version moved underneath us
	SaveWithLock(ctx context.Context, lot *InventoryLot) error
}

// StockMovementRepository defines the interface for the append-only movement
// ledger. There are deliberately no update or delete operations.
type StockMovementRepository interface {
	// Create appends a movement record
	Create(ctx context.Context, movement *StockMovement) error

	// FindByLot returns the movement history of a lot, most recent first
	FindByLot(ctx context.Context, tenantID, lotID uuid.UUID, filter shared.Filter) ([]StockMovement, error)

	// CountByLot counts the movements recorded for a lot
	CountByLot(ctx context.Context, tenantID, lotID uuid.UUID) (int64, error)
}

package warehouse

import (
	"context"

	"github.com/businaro/backend/internal/domain/catalog"
	"github.com/businaro/backend/internal/domain/warehouse"
)

// TransactionScope provides transactional access to the ledger repositories.
// When a function executes within a scope, all repository operations are part
// of the same database transaction and commit or roll back atomically. Every
// mutating ledger operation runs inside one scope: the lot update(s) and the
// movement insert(s) are never applied partially.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error the transaction is rolled back,
	// otherwise it is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories participating
// in a ledger transaction. All repositories returned share the same
// underlying database transaction, so row locks taken via
// InventoryLotRepository.FindByIDForUpdate hold until the scope ends.
type TransactionalRepositories interface {
	// LotRepo returns the inventory lot repository scoped to the transaction
	LotRepo() warehouse.InventoryLotRepository
	// MovementRepo returns the stock movement repository scoped to the transaction
	MovementRepo() warehouse.StockMovementRepository
	// ProductRepo returns the product repository scoped to the transaction
	ProductRepo() catalog.ProductRepository
}

// NoOpTransactionScope runs the scoped function without a real transaction.
// Useful in tests where repositories are in-memory fakes.
type NoOpTransactionScope struct {
	lotRepo      warehouse.InventoryLotRepository
	movementRepo warehouse.StockMovementRepository
	productRepo  catalog.ProductRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories.
func NewNoOpTransactionScope(
	lotRepo warehouse.InventoryLotRepository,
	movementRepo warehouse.StockMovementRepository,
	productRepo catalog.ProductRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		lotRepo:      lotRepo,
		movementRepo: movementRepo,
		productRepo:  productRepo,
	}
}

// Execute runs the function without transactional guarantees.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// LotRepo returns the inventory lot repository.
func (s *NoOpTransactionScope) LotRepo() warehouse.InventoryLotRepository {
	return s.lotRepo
}

// MovementRepo returns the stock movement repository.
func (s *NoOpTransactionScope) MovementRepo() warehouse.StockMovementRepository {
	return s.movementRepo
}

// ProductRepo returns the product repository.
func (s *NoOpTransactionScope) ProductRepo() catalog.ProductRepository {
	return s.productRepo
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)

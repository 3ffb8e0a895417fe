package persistence

import (
	"context"

	appwh "github.com/businaro/backend/internal/application/warehouse"
	"github.com/businaro/backend/internal/domain/catalog"
	"github.com/businaro/backend/internal/domain/warehouse"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// Every ledger mutation runs through it, so the lot update and its paired
// movement insert commit or roll back together, and a FOR UPDATE lock taken
// inside the scope holds until the scope ends.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope.
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appwh.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides access to all repositories within a transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// LotRepo returns the inventory lot repository scoped to the current transaction.
func (r *gormTransactionalRepositories) LotRepo() warehouse.InventoryLotRepository {
	return NewGormInventoryLotRepository(r.tx)
}

// MovementRepo returns the stock movement repository scoped to the current transaction.
func (r *gormTransactionalRepositories) MovementRepo() warehouse.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

// ProductRepo returns the product repository scoped to the current transaction.
func (r *gormTransactionalRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

var _ appwh.TransactionScope = (*GormTransactionScope)(nil)
var _ appwh.TransactionalRepositories = (*gormTransactionalRepositories)(nil)

package warehouse

import (
	"context"

	"github.com/businaro/backend/internal/domain/catalog"
	"github.com/businaro/backend/internal/domain/shared"
	"github.com/businaro/backend/internal/domain/warehouse"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockInventoryLotRepository is a mock implementation of InventoryLotRepository
type MockInventoryLotRepository struct {
	mock.Mock
}

func (m *MockInventoryLotRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*warehouse.InventoryLot, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.InventoryLot), args.Error(1)
}

func (m *MockInventoryLotRepository) FindByIDForUpdate(ctx context.Context, tenantID, id uuid.UUID) (*warehouse.InventoryLot, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.InventoryLot), args.Error(1)
}

func (m *MockInventoryLotRepository) FindByMergeKey(ctx context.Context, tenantID uuid.UUID, key warehouse.LotMergeKey) (*warehouse.InventoryLot, error) {
	args := m.Called(ctx, tenantID, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.InventoryLot), args.Error(1)
}

func (m *MockInventoryLotRepository) FindByProduct(ctx context.Context, tenantID, productID uuid.UUID, filter shared.Filter) ([]warehouse.InventoryLot, error) {
	args := m.Called(ctx, tenantID, productID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]warehouse.InventoryLot), args.Error(1)
}

func (m *MockInventoryLotRepository) Create(ctx context.Context, lot *warehouse.InventoryLot) error {
	args := m.Called(ctx, lot)
	return args.Error(0)
}

func (m *MockInventoryLotRepository) SaveWithLock(ctx context.Context, lot *warehouse.InventoryLot) error {
	args := m.Called(ctx, lot)
	return args.Error(0)
}

// MockStockMovementRepository is a mock implementation of StockMovementRepository
type MockStockMovementRepository struct {
	mock.Mock
}

func (m *MockStockMovementRepository) Create(ctx context.Context, movement *warehouse.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockStockMovementRepository) FindByLot(ctx context.Context, tenantID, lotID uuid.UUID, filter shared.Filter) ([]warehouse.StockMovement, error) {
	args := m.Called(ctx, tenantID, lotID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]warehouse.StockMovement), args.Error(1)
}

func (m *MockStockMovementRepository) CountByLot(ctx context.Context, tenantID, lotID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID, lotID)
	return args.Get(0).(int64), args.Error(1)
}

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindBySKU(ctx context.Context, tenantID uuid.UUID, sku string) (*catalog.Product, error) {
	args := m.Called(ctx, tenantID, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]catalog.Product, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

// Interface conformance checks
var _ warehouse.InventoryLotRepository = (*MockInventoryLotRepository)(nil)
var _ warehouse.StockMovementRepository = (*MockStockMovementRepository)(nil)
var _ catalog.ProductRepository = (*MockProductRepository)(nil)

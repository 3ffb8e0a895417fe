package persistence

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/businaro/backend/internal/domain/shared"
	"github.com/businaro/backend/internal/domain/warehouse"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockDB creates a GORM connection backed by sqlmock
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return gormDB, mock, mockDB
}

func lotRows(lot *warehouse.InventoryLot) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "created_at", "updated_at", "version", "tenant_id",
		"product_id", "location_id", "batch_number", "serial_number",
		"status", "condition", "quantity",
	}).AddRow(
		lot.ID, lot.CreatedAt, lot.UpdatedAt, lot.Version, lot.TenantID,
		lot.ProductID, lot.LocationID, lot.BatchNumber, lot.SerialNumber,
		lot.Status, lot.Condition, lot.Quantity,
	)
}

func makeLot(t *testing.T, tenantID uuid.UUID) *warehouse.InventoryLot {
	t.Helper()
	lot, err := warehouse.NewInventoryLot(
		tenantID, uuid.New(), uuid.New(),
		decimal.NewFromInt(10), warehouse.LotStatusAvailable, warehouse.LotConditionNew,
		nil, nil,
	)
	require.NoError(t, err)
	return lot
}

func TestGormInventoryLotRepository_FindByIDForTenant(t *testing.T) {
	t.Run("finds existing lot", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryLotRepository(gormDB)

		tenantID := uuid.New()
		lot := makeLot(t, tenantID)

		mock.ExpectQuery(`SELECT \* FROM "inventory_lots" WHERE tenant_id = \$1 AND id = \$2`).
			WithArgs(tenantID, lot.ID, 1).
			WillReturnRows(lotRows(lot))

		found, err := repo.FindByIDForTenant(context.Background(), tenantID, lot.ID)

		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, lot.ID, found.ID)
		assert.Equal(t, warehouse.LotStatusAvailable, found.Status)
		assert.True(t, found.Quantity.Equal(decimal.NewFromInt(10)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for missing lot", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryLotRepository(gormDB)

		tenantID := uuid.New()
		lotID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "inventory_lots"`).
			WithArgs(tenantID, lotID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		found, err := repo.FindByIDForTenant(context.Background(), tenantID, lotID)

		assert.Nil(t, found)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("does not leak lots across tenants", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryLotRepository(gormDB)

		otherTenant := uuid.New()
		lot := makeLot(t, uuid.New())

		mock.ExpectQuery(`SELECT \* FROM "inventory_lots" WHERE tenant_id = \$1 AND id = \$2`).
			WithArgs(otherTenant, lot.ID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		found, err := repo.FindByIDForTenant(context.Background(), otherTenant, lot.ID)

		assert.Nil(t, found)
		assert.True(t, shared.IsNotFound(err))
	})
}

func TestGormInventoryLotRepository_FindByIDForUpdate(t *testing.T) {
	t.Run("locks the row with FOR UPDATE", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryLotRepository(gormDB)

		tenantID := uuid.New()
		lot := makeLot(t, tenantID)

		mock.ExpectQuery(`SELECT \* FROM "inventory_lots" WHERE tenant_id = \$1 AND id = \$2 .* FOR UPDATE`).
			WithArgs(tenantID, lot.ID, 1).
			WillReturnRows(lotRows(lot))

		found, err := repo.FindByIDForUpdate(context.Background(), tenantID, lot.ID)

		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, lot.ID, found.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns not found for missing lot", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryLotRepository(gormDB)

		tenantID := uuid.New()
		lotID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "inventory_lots"`).
			WithArgs(tenantID, lotID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		found, err := repo.FindByIDForUpdate(context.Background(), tenantID, lotID)

		assert.Nil(t, found)
		assert.True(t, shared.IsNotFound(err))
	})
}

func TestGormInventoryLotRepository_FindByMergeKey(t *testing.T) {
	t.Run("nil batch and serial match NULL columns", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryLotRepository(gormDB)

		tenantID := uuid.New()
		lot := makeLot(t, tenantID)
		key := warehouse.LotMergeKey{
			ProductID:  lot.ProductID,
			LocationID: lot.LocationID,
			Status:     warehouse.LotStatusAvailable,
			Condition:  warehouse.LotConditionNew,
		}

		mock.ExpectQuery(`SELECT \* FROM "inventory_lots" WHERE .*batch_number IS NULL.*serial_number IS NULL`).
			WithArgs(tenantID, key.ProductID, key.LocationID, string(key.Status), string(key.Condition), 1).
			WillReturnRows(lotRows(lot))

		found, err := repo.FindByMergeKey(context.Background(), tenantID, key)

		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, lot.ID, found.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("batch and serial bound when present", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryLotRepository(gormDB)

		tenantID := uuid.New()
		batch := "B-2024-001"
		serial := "SN-42"
		lot, err := warehouse.NewInventoryLot(
			tenantID, uuid.New(), uuid.New(),
			decimal.NewFromInt(5), warehouse.LotStatusAvailable, warehouse.LotConditionNew,
			&batch, &serial,
		)
		require.NoError(t, err)
		key := warehouse.LotMergeKey{
			ProductID:    lot.ProductID,
			LocationID:   lot.LocationID,
			BatchNumber:  &batch,
			SerialNumber: &serial,
			Status:       warehouse.LotStatusAvailable,
			Condition:    warehouse.LotConditionNew,
		}

		mock.ExpectQuery(`SELECT \* FROM "inventory_lots" WHERE .*batch_number = .*serial_number =`).
			WithArgs(tenantID, key.ProductID, key.LocationID, string(key.Status), string(key.Condition), batch, serial, 1).
			WillReturnRows(lotRows(lot))

		found, err := repo.FindByMergeKey(context.Background(), tenantID, key)

		assert.NoError(t, err)
		require.NotNil(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no merge candidate", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryLotRepository(gormDB)

		tenantID := uuid.New()
		key := warehouse.LotMergeKey{
			ProductID:  uuid.New(),
			LocationID: uuid.New(),
			Status:     warehouse.LotStatusAvailable,
			Condition:  warehouse.LotConditionNew,
		}

		mock.ExpectQuery(`SELECT \* FROM "inventory_lots"`).
			WillReturnError(gorm.ErrRecordNotFound)

		found, err := repo.FindByMergeKey(context.Background(), tenantID, key)

		assert.Nil(t, found)
		assert.True(t, shared.IsNotFound(err))
	})
}

func TestGormInventoryLotRepository_Create(t *testing.T) {
	t.Run("inserts a new lot", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryLotRepository(gormDB)

		lot := makeLot(t, uuid.New())

		mock.ExpectExec(`INSERT INTO "inventory_lots"`).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Create(context.Background(), lot)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormInventoryLotRepository_SaveWithLock(t *testing.T) {
	t.Run("saves when version matches", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryLotRepository(gormDB)

		lot := makeLot(t, uuid.New())
		require.NoError(t, lot.Consume(decimal.NewFromInt(4)))

		mock.ExpectExec(`UPDATE "inventory_lots" SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.SaveWithLock(context.Background(), lot)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conflicts when the row version moved", func(t *testing.T) {
		gormDB, mock, mockDB := newMockDB(t)
		defer mockDB.Close()
		repo := NewGormInventoryLotRepository(gormDB)

		lot := makeLot(t, uuid.New())
		require.NoError(t, lot.Consume(decimal.NewFromInt(4)))

		mock.ExpectExec(`UPDATE "inventory_lots" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.SaveWithLock(context.Background(), lot)

		assert.Error(t, err)
		assert.True(t, shared.IsConflict(err))
	})
}

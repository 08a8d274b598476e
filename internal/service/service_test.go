package service

import (
	"testing"

	appdb "github.com/deepaksinghh13/PIMS-Inventory-Management/internal/database"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/model"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/notify"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory store per test, the Go analog of the
// original fixtures' throwaway databases.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every session on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, appdb.Migrate(db))
	return db
}

func newCatalogService(t *testing.T, db *gorm.DB) CatalogService {
	t.Helper()
	return NewCatalogService(
		repository.NewProductRepo(db),
		repository.NewCategoryRepo(db),
		db,
		zap.NewNop(),
	)
}

// captureNotifier records emitted low-stock alerts for assertions.
type captureNotifier struct {
	alerts []notify.LowStockAlert
}

func (c *captureNotifier) LowStock(alert notify.LowStockAlert) {
	c.alerts = append(c.alerts, alert)
}

func newInventoryService(t *testing.T, db *gorm.DB, notifier notify.Notifier) InventoryService {
	t.Helper()
	if notifier == nil {
		notifier = &captureNotifier{}
	}
	return NewInventoryService(
		repository.NewInventoryRepo(db),
		repository.NewTransactionRepo(db),
		repository.NewProductRepo(db),
		db,
		notifier,
		nil,
		zap.NewNop(),
	)
}

func seedProduct(t *testing.T, db *gorm.DB, name, sku string, price float64) *model.Product {
	t.Helper()
	product := &model.Product{
		Name:  name,
		SKU:   sku,
		Price: decimal.NewFromFloat(price),
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func seedInventory(t *testing.T, db *gorm.DB, productID uint, quantity int) *model.Inventory {
	t.Helper()
	inventory := &model.Inventory{
		ProductID:         productID,
		Quantity:          quantity,
		WarehouseLocation: "Warehouse A",
	}
	require.NoError(t, db.Create(inventory).Error)
	return inventory
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *model.Category {
	t.Helper()
	category := &model.Category{Name: name}
	require.NoError(t, db.Create(category).Error)
	return category
}

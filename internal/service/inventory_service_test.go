package service

import (
	"testing"
	"time"

	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/apperr"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInventory(t *testing.T) {
	db := newTestDB(t)
	svc := newInventoryService(t, db, nil)
	product := seedProduct(t, db, "Laptop", "LAP123", 1500)

	err := svc.CreateInventory(&model.CreateInventoryRequest{
		ProductID:         product.ID,
		Quantity:          10,
		WarehouseLocation: "Warehouse A",
	})
	require.NoError(t, err)

	var inventory model.Inventory
	require.NoError(t, db.Where("product_id = ?", product.ID).First(&inventory).Error)
	assert.Equal(t, 10, inventory.Quantity)
	assert.Equal(t, "Warehouse A", inventory.WarehouseLocation)
}

func TestCreateInventoryProductNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newInventoryService(t, db, nil)

	err := svc.CreateInventory(&model.CreateInventoryRequest{
		ProductID:         99,
		Quantity:          5,
		WarehouseLocation: "Warehouse X",
	})
	assert.True(t, apperr.IsNotFound(err))
}

func TestCreateInventoryDuplicateIsConflict(t *testing.T) {
	db := newTestDB(t)
	svc := newInventoryService(t, db, nil)
	product := seedProduct(t, db, "Laptop", "LAP123", 1500)
	seedInventory(t, db, product.ID, 5)

	err := svc.CreateInventory(&model.CreateInventoryRequest{
		ProductID:         product.ID,
		Quantity:          3,
		WarehouseLocation: "Warehouse B",
	})
	assert.True(t, apperr.IsConflict(err))

	var count int64
	require.NoError(t, db.Model(&model.Inventory{}).Where("product_id = ?", product.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAdjustInventoryAppliesDeltaAndLedgerRow(t *testing.T) {
	db := newTestDB(t)
	svc := newInventoryService(t, db, nil)
	product := seedProduct(t, db, "Laptop", "LAP123", 1500)
	inventory := seedInventory(t, db, product.ID, 50)

	err := svc.AdjustInventory(inventory.ID, &model.AdjustInventoryRequest{
		QuantityChange: -10,
		Reason:         "sale",
	}, 7)
	require.NoError(t, err)

	var reloaded model.Inventory
	require.NoError(t, db.First(&reloaded, inventory.ID).Error)
	assert.Equal(t, 40, reloaded.Quantity)

	var rows []model.InventoryTransaction
	require.NoError(t, db.Where("inventory_id = ?", inventory.ID).Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, -10, rows[0].QuantityChange)
	assert.Equal(t, "sale", rows[0].Reason)
	assert.Equal(t, uint(7), rows[0].UserID)
	assert.WithinDuration(t, time.Now().UTC(), rows[0].Timestamp, time.Minute)
}

func TestAdjustInventoryNegativeResultRollsBack(t *testing.T) {
	db := newTestDB(t)
	svc := newInventoryService(t, db, nil)
	product := seedProduct(t, db, "Laptop", "LAP123", 1500)
	inventory := seedInventory(t, db, product.ID, 5)

	err := svc.AdjustInventory(inventory.ID, &model.AdjustInventoryRequest{
		QuantityChange: -10,
		Reason:         "sale",
	}, 7)
	assert.True(t, apperr.IsValidation(err))

	var reloaded model.Inventory
	require.NoError(t, db.First(&reloaded, inventory.ID).Error)
	assert.Equal(t, 5, reloaded.Quantity)

	var count int64
	require.NoError(t, db.Model(&model.InventoryTransaction{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestAdjustInventoryNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newInventoryService(t, db, nil)

	err := svc.AdjustInventory(99, &model.AdjustInventoryRequest{
		QuantityChange: 1,
		Reason:         "restock",
	}, 1)
	assert.True(t, apperr.IsNotFound(err))
}

func TestAdjustInventorySequence(t *testing.T) {
	db := newTestDB(t)
	svc := newInventoryService(t, db, nil)
	product := seedProduct(t, db, "Laptop", "LAP123", 1500)
	inventory := seedInventory(t, db, product.ID, 0)

	deltas := []int{30, -5, -5, 12}
	for _, delta := range deltas {
		require.NoError(t, svc.AdjustInventory(inventory.ID, &model.AdjustInventoryRequest{
			QuantityChange: delta,
			Reason:         "movement",
		}, 1))
	}

	var reloaded model.Inventory
	require.NoError(t, db.First(&reloaded, inventory.ID).Error)
	assert.Equal(t, 32, reloaded.Quantity)

	rows, err := svc.ListTransactions(inventory.ID)
	require.NoError(t, err)
	require.Len(t, rows, len(deltas))
	for i, delta := range deltas {
		assert.Equal(t, delta, rows[i].QuantityChange)
	}
}

func TestGetInventoryByProduct(t *testing.T) {
	db := newTestDB(t)
	svc := newInventoryService(t, db, nil)
	product := seedProduct(t, db, "Laptop", "LAP123", 1500)
	seedInventory(t, db, product.ID, 20)

	inventory, err := svc.GetInventoryByProduct(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 20, inventory.Quantity)
	require.NotNil(t, inventory.Product)
	assert.Equal(t, "LAP123", inventory.Product.SKU)
}

func TestGetInventoryByProductNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newInventoryService(t, db, nil)

	_, err := svc.GetInventoryByProduct(99)
	assert.True(t, apperr.IsNotFound(err))
}

func TestListTransactionsEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := newInventoryService(t, db, nil)
	product := seedProduct(t, db, "Laptop", "LAP123", 1500)
	inventory := seedInventory(t, db, product.ID, 20)

	rows, err := svc.ListTransactions(inventory.ID)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCheckLowInventoryUsesStrictComparison(t *testing.T) {
	db := newTestDB(t)
	capture := &captureNotifier{}
	svc := newInventoryService(t, db, capture)

	quantities := []int{2, 10, 15}
	for i, q := range quantities {
		product := seedProduct(t, db, "Item", "SKU-"+string(rune('A'+i)), 10)
		seedInventory(t, db, product.ID, q)
	}

	require.NoError(t, svc.CheckLowInventory(10))

	require.Len(t, capture.alerts, 1)
	alert := capture.alerts[0]
	assert.Equal(t, 2, alert.Quantity)
	assert.Equal(t, 10, alert.Threshold)
	assert.Equal(t, "Item", alert.ProductName)
	assert.Equal(t, "SKU-A", alert.SKU)
}

func TestCheckLowInventoryNoMatches(t *testing.T) {
	db := newTestDB(t)
	capture := &captureNotifier{}
	svc := newInventoryService(t, db, capture)

	product := seedProduct(t, db, "Laptop", "LAP123", 1500)
	seedInventory(t, db, product.ID, 100)

	require.NoError(t, svc.CheckLowInventory(10))
	assert.Empty(t, capture.alerts)
}

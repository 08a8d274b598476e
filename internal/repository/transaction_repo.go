package repository

import (
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/model"

	"gorm.io/gorm"
)

// TransactionRepository is append-only: ledger rows are created inside the
// adjustment transaction and read back in insertion order. No update or
// delete methods exist.
type TransactionRepository interface {
	Create(tx *gorm.DB, transaction *model.InventoryTransaction) error
	FindByInventoryID(inventoryID uint) ([]model.InventoryTransaction, error)
}

type transactionRepo struct {
	db *gorm.DB
}

func NewTransactionRepo(db *gorm.DB) TransactionRepository {
	return &transactionRepo{db}
}

func (r *transactionRepo) Create(tx *gorm.DB, transaction *model.InventoryTransaction) error {
	return tx.Create(transaction).Error
}

func (r *transactionRepo) FindByInventoryID(inventoryID uint) ([]model.InventoryTransaction, error) {
	var transactions []model.InventoryTransaction
	err := r.db.Where("inventory_id = ?", inventoryID).
		Order("id ASC").
		Find(&transactions).Error
	return transactions, err
}

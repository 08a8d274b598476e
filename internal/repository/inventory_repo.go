package repository

import (
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/apperr"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/model"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(inventory *model.Inventory) error
	FindByIDForUpdate(tx *gorm.DB, id uint) (*model.Inventory, error)
	FindByProductID(productID uint) (*model.Inventory, error)
	UpdateQuantity(tx *gorm.DB, id uint, newQuantity int) error
	FindBelowThreshold(threshold int) ([]model.Inventory, error)
}

type inventoryRepo struct {
	db *gorm.DB
}

func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db}
}

// Create inserts the inventory row. A second row for the same product trips
// the unique index on product_id and surfaces as Conflict; there is no
// read-before-write check.
func (r *inventoryRepo) Create(inventory *model.Inventory) error {
	if err := r.db.Create(inventory).Error; err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflictf("inventory already exists for product %d", inventory.ProductID)
		}
		return err
	}
	return nil
}

// FindByIDForUpdate loads the inventory row inside tx, row-locked where the
// dialect supports it, so the adjust path reads a stable quantity.
func (r *inventoryRepo) FindByIDForUpdate(tx *gorm.DB, id uint) (*model.Inventory, error) {
	var inventory model.Inventory
	if err := lockForUpdate(tx).First(&inventory, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &inventory, nil
}

func (r *inventoryRepo) FindByProductID(productID uint) (*model.Inventory, error) {
	var inventory model.Inventory
	err := r.db.Preload("Product").Where("product_id = ?", productID).First(&inventory).Error
	if err != nil {
		return nil, err
	}
	return &inventory, nil
}

func (r *inventoryRepo) UpdateQuantity(tx *gorm.DB, id uint, newQuantity int) error {
	return tx.Model(&model.Inventory{}).
		Where("id = ?", id).
		Update("quantity", newQuantity).Error
}

func (r *inventoryRepo) FindBelowThreshold(threshold int) ([]model.Inventory, error) {
	var items []model.Inventory
	err := r.db.Preload("Product").Where("quantity < ?", threshold).Find(&items).Error
	return items, err
}

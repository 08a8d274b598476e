package repository

import (
	"errors"

	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/apperr"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(categoryID *uint) ([]model.Product, error)
	FindByID(id uint) (*model.Product, error)
	FindByIDsForUpdate(tx *gorm.DB, ids []uint) ([]model.Product, error)
	ExistsBySKU(sku string) (bool, error)
	Save(tx *gorm.DB, product *model.Product) error
	ReplaceCategories(tx *gorm.DB, product *model.Product, categories []model.Category) error
	Delete(tx *gorm.DB, product *model.Product) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflictf("product with SKU %q already exists", product.SKU)
		}
		return err
	}
	return nil
}

func (r *productRepo) FindAll(categoryID *uint) ([]model.Product, error) {
	var products []model.Product
	q := r.db.Preload("Categories")
	if categoryID != nil {
		q = q.Joins("JOIN product_categories pc ON pc.product_id = products.id").
			Where("pc.category_id = ?", *categoryID)
	}
	err := q.Find(&products).Error
	return products, err
}

func (r *productRepo) FindByID(id uint) (*model.Product, error) {
	var product model.Product
	err := r.db.Preload("Categories").First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDsForUpdate loads the products matching ids inside tx, row-locked
// where the dialect supports it, for the bulk price adjustment path.
func (r *productRepo) FindByIDsForUpdate(tx *gorm.DB, ids []uint) ([]model.Product, error) {
	var products []model.Product
	err := lockForUpdate(tx).Where("id IN ?", ids).Find(&products).Error
	return products, err
}

func (r *productRepo) ExistsBySKU(sku string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Where("sku = ?", sku).Count(&count).Error
	return count > 0, err
}

// Save persists scalar fields only; category links go through
// ReplaceCategories so the association set is always replaced as a whole.
func (r *productRepo) Save(tx *gorm.DB, product *model.Product) error {
	if err := tx.Omit(clause.Associations).Save(product).Error; err != nil {
		if isUniqueViolation(err) {
			return apperr.Conflictf("product with SKU %q already exists", product.SKU)
		}
		return err
	}
	return nil
}

func (r *productRepo) ReplaceCategories(tx *gorm.DB, product *model.Product, categories []model.Category) error {
	assoc := tx.Model(product).Association("Categories")
	if len(categories) == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(categories)
}

// Delete removes the product together with its inventory, that inventory's
// ledger rows, and its category links, in the caller's transaction.
func (r *productRepo) Delete(tx *gorm.DB, product *model.Product) error {
	var inventory model.Inventory
	err := tx.Where("product_id = ?", product.ID).First(&inventory).Error
	switch {
	case err == nil:
		if err := tx.Where("inventory_id = ?", inventory.ID).
			Delete(&model.InventoryTransaction{}).Error; err != nil {
			return err
		}
		if err := tx.Delete(&inventory).Error; err != nil {
			return err
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	if err := tx.Model(product).Association("Categories").Clear(); err != nil {
		return err
	}
	return tx.Delete(product).Error
}

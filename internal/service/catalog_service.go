package service

import (
	"errors"
	"fmt"

	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/apperr"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/model"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/repository"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/pkg/validator"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	minPrice = decimal.NewFromFloat(0.01)
	hundred  = decimal.NewFromInt(100)
)

// CatalogService owns products, categories and their association, and the
// single and bulk price adjustments.
type CatalogService interface {
	ListProducts(categoryID *uint) ([]model.Product, error)
	GetProduct(id uint) (*model.Product, error)
	CreateProduct(req *model.CreateProductRequest) error
	UpdateProduct(id uint, req *model.UpdateProductRequest) error
	DeleteProduct(id uint) error
	AdjustPrice(id uint, newPrice decimal.Decimal) error
	AdjustBulkPrices(req *model.BulkPriceAdjustmentRequest) error

	ListCategories() ([]model.Category, error)
	GetCategory(id uint) (*model.Category, error)
	CreateCategory(req *model.CreateCategoryRequest) error
	UpdateCategory(id uint, req *model.CreateCategoryRequest) error
	DeleteCategory(id uint) error
}

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	db           *gorm.DB
	log          *zap.Logger
}

func NewCatalogService(
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
	db *gorm.DB,
	log *zap.Logger,
) CatalogService {
	return &catalogService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		db:           db,
		log:          log,
	}
}

func (s *catalogService) ListProducts(categoryID *uint) ([]model.Product, error) {
	return s.productRepo.FindAll(categoryID)
}

func (s *catalogService) GetProduct(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("product not found")
		}
		return nil, err
	}
	return product, nil
}

func (s *catalogService) CreateProduct(req *model.CreateProductRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validationf("field %s failed on %s", errs[0].FailedField, errs[0].Tag)
	}
	if req.Price.LessThan(minPrice) {
		return apperr.Validation("price must be at least 0.01")
	}

	exists, err := s.productRepo.ExistsBySKU(req.SKU)
	if err != nil {
		return fmt.Errorf("check SKU: %w", err)
	}
	if exists {
		return apperr.Validation("SKU must be unique")
	}

	// Unknown category ids are dropped, not an error.
	categories, err := s.categoryRepo.FindByIDs(req.CategoryIDs)
	if err != nil {
		return fmt.Errorf("resolve categories: %w", err)
	}

	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		SKU:         req.SKU,
		Categories:  categories,
	}
	if err := s.productRepo.Create(product); err != nil {
		return err
	}

	s.log.Info("product created",
		zap.Uint("product_id", product.ID),
		zap.String("sku", product.SKU),
	)
	return nil
}

func (s *catalogService) UpdateProduct(id uint, req *model.UpdateProductRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validationf("field %s failed on %s", errs[0].FailedField, errs[0].Tag)
	}
	if req.Price.LessThan(minPrice) {
		return apperr.Validation("price must be at least 0.01")
	}

	product, err := s.GetProduct(id)
	if err != nil {
		return err
	}

	categories, err := s.categoryRepo.FindByIDs(req.CategoryIDs)
	if err != nil {
		return fmt.Errorf("resolve categories: %w", err)
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.SKU = req.SKU

	// The category set is replaced wholesale from the new id list, together
	// with the field update.
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.ReplaceCategories(tx, product, categories); err != nil {
			return err
		}
		return s.productRepo.Save(tx, product)
	})
}

func (s *catalogService) DeleteProduct(id uint) error {
	product, err := s.GetProduct(id)
	if err != nil {
		return err
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.productRepo.Delete(tx, product)
	}); err != nil {
		return err
	}

	s.log.Info("product deleted", zap.Uint("product_id", id))
	return nil
}

// AdjustPrice sets the price unconditionally as long as it is not negative.
// Unlike creation there is no 0.01 floor here; a price of zero is accepted.
func (s *catalogService) AdjustPrice(id uint, newPrice decimal.Decimal) error {
	if newPrice.IsNegative() {
		return apperr.Validation("price cannot be negative")
	}

	product, err := s.GetProduct(id)
	if err != nil {
		return err
	}

	product.Price = newPrice
	return s.productRepo.Save(s.db, product)
}

// AdjustBulkPrices applies one adjustment mode to every matched product. The
// whole batch commits or none of it does: any negative resulting price rolls
// everything back.
func (s *catalogService) AdjustBulkPrices(req *model.BulkPriceAdjustmentRequest) error {
	if req.Percentage == nil && req.FixedAmount == nil {
		return apperr.Validation("either percentage or fixed amount must be provided")
	}
	if req.Percentage != nil && req.FixedAmount != nil {
		return apperr.Validation("cannot use both percentage and fixed amount adjustments")
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		products, err := s.productRepo.FindByIDsForUpdate(tx, req.ProductIDs)
		if err != nil {
			return err
		}
		if len(products) == 0 {
			return apperr.NotFound("no products found for the provided ids")
		}

		for i := range products {
			product := &products[i]
			if req.Percentage != nil {
				product.Price = product.Price.Add(product.Price.Mul(req.Percentage.Div(hundred)))
			} else {
				product.Price = product.Price.Add(*req.FixedAmount)
			}

			if product.Price.IsNegative() {
				return apperr.Validationf("price for product %d cannot be negative", product.ID)
			}
			if err := s.productRepo.Save(tx, product); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *catalogService) ListCategories() ([]model.Category, error) {
	return s.categoryRepo.FindAll()
}

func (s *catalogService) GetCategory(id uint) (*model.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category not found")
		}
		return nil, err
	}
	return category, nil
}

func (s *catalogService) CreateCategory(req *model.CreateCategoryRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validationf("field %s failed on %s", errs[0].FailedField, errs[0].Tag)
	}
	return s.categoryRepo.Create(&model.Category{Name: req.Name})
}

func (s *catalogService) UpdateCategory(id uint, req *model.CreateCategoryRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validationf("field %s failed on %s", errs[0].FailedField, errs[0].Tag)
	}
	category, err := s.GetCategory(id)
	if err != nil {
		return err
	}
	category.Name = req.Name
	return s.categoryRepo.Update(category)
}

func (s *catalogService) DeleteCategory(id uint) error {
	category, err := s.GetCategory(id)
	if err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		return s.categoryRepo.Delete(tx, category)
	})
}

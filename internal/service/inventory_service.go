package service

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/apperr"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/model"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/notify"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/repository"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/ws"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/pkg/validator"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InventoryService owns stock levels and the transaction ledger. Every
// quantity mutation is paired with exactly one ledger row in the same store
// transaction.
type InventoryService interface {
	CreateInventory(req *model.CreateInventoryRequest) error
	AdjustInventory(inventoryID uint, req *model.AdjustInventoryRequest, actingUserID uint) error
	GetInventoryByProduct(productID uint) (*model.Inventory, error)
	ListTransactions(inventoryID uint) ([]model.InventoryTransaction, error)
	CheckLowInventory(threshold int) error
}

type inventoryService struct {
	inventoryRepo   repository.InventoryRepository
	transactionRepo repository.TransactionRepository
	productRepo     repository.ProductRepository
	db              *gorm.DB
	notifier        notify.Notifier
	wsHub           *ws.Hub
	log             *zap.Logger
}

func NewInventoryService(
	inventoryRepo repository.InventoryRepository,
	transactionRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	db *gorm.DB,
	notifier notify.Notifier,
	hub *ws.Hub,
	log *zap.Logger,
) InventoryService {
	return &inventoryService{
		inventoryRepo:   inventoryRepo,
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		db:              db,
		notifier:        notifier,
		wsHub:           hub,
		log:             log,
	}
}

func (s *inventoryService) CreateInventory(req *model.CreateInventoryRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validationf("field %s failed on %s", errs[0].FailedField, errs[0].Tag)
	}

	if _, err := s.productRepo.FindByID(req.ProductID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("product not found")
		}
		return err
	}

	// No pre-check for an existing row: the unique index on product_id is the
	// invariant, and the repo surfaces a duplicate as Conflict.
	inventory := &model.Inventory{
		ProductID:         req.ProductID,
		Quantity:          req.Quantity,
		WarehouseLocation: req.WarehouseLocation,
	}
	return s.inventoryRepo.Create(inventory)
}

// AdjustInventory applies a signed quantity delta and appends the matching
// ledger row, both inside one store transaction. The ledger must never show a
// row without the quantity change or vice versa.
func (s *inventoryService) AdjustInventory(inventoryID uint, req *model.AdjustInventoryRequest, actingUserID uint) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validationf("field %s failed on %s", errs[0].FailedField, errs[0].Tag)
	}

	var newQuantity int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		inventory, err := s.inventoryRepo.FindByIDForUpdate(tx, inventoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("inventory not found")
			}
			return err
		}

		newQuantity = inventory.Quantity + req.QuantityChange
		if newQuantity < 0 {
			return apperr.Validation("inventory quantity cannot be negative")
		}

		if err := s.inventoryRepo.UpdateQuantity(tx, inventory.ID, newQuantity); err != nil {
			return err
		}
		return s.transactionRepo.Create(tx, &model.InventoryTransaction{
			InventoryID:    inventory.ID,
			QuantityChange: req.QuantityChange,
			Reason:         req.Reason,
			Timestamp:      time.Now().UTC(),
			UserID:         actingUserID,
		})
	})
	if err != nil {
		return err
	}

	s.log.Info("inventory adjusted",
		zap.Uint("inventory_id", inventoryID),
		zap.Int("quantity_change", req.QuantityChange),
		zap.Int("new_quantity", newQuantity),
		zap.Uint("user_id", actingUserID),
	)
	s.broadcastAdjustment(inventoryID, req, newQuantity, actingUserID)
	return nil
}

// broadcastAdjustment publishes the committed adjustment to websocket
// clients. Best effort only; the adjustment has already committed.
func (s *inventoryService) broadcastAdjustment(inventoryID uint, req *model.AdjustInventoryRequest, newQuantity int, userID uint) {
	if s.wsHub == nil {
		return
	}
	payload := map[string]interface{}{
		"type":            "stock_update",
		"inventory_id":    inventoryID,
		"quantity_change": req.QuantityChange,
		"new_quantity":    newQuantity,
		"reason":          req.Reason,
		"user_id":         userID,
	}
	msg, err := json.Marshal(payload)
	if err != nil {
		return
	}
	s.wsHub.Broadcast <- msg
}

func (s *inventoryService) GetInventoryByProduct(productID uint) (*model.Inventory, error) {
	inventory, err := s.inventoryRepo.FindByProductID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("inventory not found")
		}
		return nil, err
	}
	return inventory, nil
}

func (s *inventoryService) ListTransactions(inventoryID uint) ([]model.InventoryTransaction, error) {
	return s.transactionRepo.FindByInventoryID(inventoryID)
}

// CheckLowInventory emits a low-stock signal for every inventory row whose
// quantity is strictly below threshold. Responsibility ends at emission;
// delivery belongs to the notifier.
func (s *inventoryService) CheckLowInventory(threshold int) error {
	items, err := s.inventoryRepo.FindBelowThreshold(threshold)
	if err != nil {
		return err
	}

	for _, item := range items {
		alert := notify.LowStockAlert{
			InventoryID: item.ID,
			ProductID:   item.ProductID,
			Quantity:    item.Quantity,
			Threshold:   threshold,
		}
		if item.Product != nil {
			alert.ProductName = item.Product.Name
			alert.SKU = item.Product.SKU
		}
		s.notifier.LowStock(alert)
	}
	return nil
}

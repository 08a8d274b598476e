package model

import "github.com/shopspring/decimal"

// Request payloads. Field-level rules (required, length limits) are checked by
// pkg/validator before the services run their domain rules.

type CreateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=100"`
	Description string          `json:"description" validate:"max=500"`
	Price       decimal.Decimal `json:"price"`
	SKU         string          `json:"sku" validate:"required,max=50"`
	CategoryIDs []uint          `json:"category_ids"`
}

type UpdateProductRequest struct {
	Name        string          `json:"name" validate:"required,max=100"`
	Description string          `json:"description" validate:"max=500"`
	Price       decimal.Decimal `json:"price"`
	SKU         string          `json:"sku" validate:"required,max=50"`
	CategoryIDs []uint          `json:"category_ids"`
}

type AdjustPriceRequest struct {
	NewPrice decimal.Decimal `json:"new_price"`
}

// BulkPriceAdjustmentRequest carries exactly one adjustment mode: a relative
// percentage or an absolute amount added to each price.
type BulkPriceAdjustmentRequest struct {
	ProductIDs  []uint           `json:"product_ids"`
	Percentage  *decimal.Decimal `json:"percentage"`
	FixedAmount *decimal.Decimal `json:"fixed_amount"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type CreateInventoryRequest struct {
	ProductID         uint   `json:"product_id" validate:"required"`
	Quantity          int    `json:"quantity" validate:"min=0"`
	WarehouseLocation string `json:"warehouse_location" validate:"required,max=100"`
}

type AdjustInventoryRequest struct {
	QuantityChange int    `json:"quantity_change"`
	Reason         string `json:"reason" validate:"required,max=200"`
}

type AuditAdjustmentRequest struct {
	InventoryID uint                   `json:"inventory_id" validate:"required"`
	Adjustment  AdjustInventoryRequest `json:"adjustment"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

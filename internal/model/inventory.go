package model

// Inventory holds the current stock level for exactly one product.
// The unique index on ProductID enforces the one-to-one relationship.
type Inventory struct {
	BaseModel
	ProductID         uint     `gorm:"uniqueIndex;not null" json:"product_id"`
	Product           *Product `json:"product,omitempty"`
	Quantity          int      `gorm:"not null" json:"quantity"`
	WarehouseLocation string   `gorm:"type:varchar(100)" json:"warehouse_location"`

	Transactions []InventoryTransaction `gorm:"foreignKey:InventoryID" json:"transactions,omitempty"`
}

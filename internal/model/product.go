package model

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	Name        string          `gorm:"type:varchar(100);not null" json:"name"`
	Description string          `gorm:"type:varchar(500)" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	SKU         string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku"`

	Categories []Category `gorm:"many2many:product_categories;" json:"categories,omitempty"`
	Inventory  *Inventory `json:"inventory,omitempty"`
}

// CategoryIDs returns the ids of the categories the product is linked to.
func (p *Product) CategoryIDs() []uint {
	ids := make([]uint, len(p.Categories))
	for i, c := range p.Categories {
		ids[i] = c.ID
	}
	return ids
}

package model

import "time"

// InventoryTransaction is one immutable ledger row: a signed quantity delta
// with its cause, the moment it was applied, and the acting user. Rows are
// appended in the same store transaction as the quantity change and are never
// updated or deleted.
type InventoryTransaction struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	InventoryID    uint      `gorm:"index;not null" json:"inventory_id"`
	QuantityChange int       `gorm:"not null" json:"quantity_change"`
	Reason         string    `gorm:"type:varchar(200);not null" json:"reason"`
	Timestamp      time.Time `gorm:"not null" json:"timestamp"`
	UserID         uint      `gorm:"index;not null" json:"user_id"`
	User           *User     `json:"user,omitempty"`
}

package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate adds a pessimistic row lock so two concurrent adjustments to
// the same row cannot both read the same pre-update value. SQLite has no
// SELECT ... FOR UPDATE; its single-writer model already serializes writers,
// so the clause is only applied on PostgreSQL.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

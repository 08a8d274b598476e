package database

import (
	"errors"

	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/model"
	"github.com/deepaksinghh13/PIMS-Inventory-Management/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate creates the five tables plus the product_categories join table and
// the unique indexes on products.sku and inventories.product_id.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Inventory{},
		&model.InventoryTransaction{},
	)
}

// Seed creates the default users and starter categories when they are absent.
func Seed(db *gorm.DB, log *zap.Logger) {
	userRepo := repository.NewUserRepo(db)

	seedUser(userRepo, log, "admin@pims.com", "Admin User", model.RoleAdmin, "Admin@123")
	seedUser(userRepo, log, "user@pims.com", "Regular User", model.RoleUser, "User@123")

	var count int64
	if err := db.Model(&model.Category{}).Count(&count).Error; err != nil || count > 0 {
		return
	}
	for _, name := range []string{"Electronics", "Clothing", "Groceries", "Books"} {
		if err := db.Create(&model.Category{Name: name}).Error; err != nil {
			log.Warn("failed to seed category", zap.String("name", name), zap.Error(err))
		}
	}
}

func seedUser(userRepo repository.UserRepository, log *zap.Logger, email, fullName, role, password string) {
	if _, err := userRepo.FindByEmail(email); err == nil || !errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}

	user := &model.User{
		Email:    email,
		FullName: fullName,
		Role:     role,
		IsActive: true,
	}
	if err := user.SetPassword(password); err != nil {
		log.Warn("failed to hash seed password", zap.String("email", email), zap.Error(err))
		return
	}
	if err := userRepo.Create(user); err != nil {
		log.Warn("failed to seed user", zap.String("email", email), zap.Error(err))
		return
	}
	log.Info("seeded user", zap.String("email", email), zap.String("role", role))
}

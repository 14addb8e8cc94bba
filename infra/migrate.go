package infra

import (
	"fmt"
	"worker-management/models"
	"worker-management/repositories"

	"gorm.io/gorm"
)

// Migrate テーブルを作成し、ADMIN/USERロールをシードする
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Role{}, &models.User{}); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	if err := repositories.NewRoleRepository(db).SeedDefaults(); err != nil {
		return fmt.Errorf("seed roles: %w", err)
	}
	return nil
}

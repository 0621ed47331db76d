package db

import (
	"fmt"

	"github.com/fsdevblog/smartlinks/internal/models"
	"gorm.io/gorm"
)

// Migrate приводит схему к актуальному состоянию. Повторный вызов безопасен.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Smartlink{}); err != nil {
		return fmt.Errorf("migrating sql: %w", err)
	}
	return nil
}

package database

import (
	"fmt"

	"gorm.io/gorm"
)

var setupSQL = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
}

var postMigrationSQL = []string{
	`CREATE INDEX IF NOT EXISTS idx_products_department_sub ON products (department, sub_category) WHERE deleted_at IS NULL;`,
	`CREATE INDEX IF NOT EXISTS idx_products_rating ON products (rating DESC);`,
}

// Migrate prepares extensions, auto-migrates the given models and creates
// the secondary indexes AutoMigrate cannot express.
func Migrate(db *gorm.DB, models ...interface{}) error {
	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("setup sql failed: %w", err)
		}
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate failed: %w", err)
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("post migration sql failed: %w", err)
		}
	}
	return nil
}

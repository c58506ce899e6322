package implementation

import (
	"spi-eshop-be/internal/repository/specification"

	"gorm.io/gorm"
)

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// insertBatchSize bounds a single INSERT for bulk imports.
const insertBatchSize = 100

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	Id            uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Sku           string                      `gorm:"type:varchar(32);uniqueIndex"`
	Name          string                      `gorm:"type:varchar(255);not null"`
	Description   string                      `gorm:"type:text"`
	Price         float64                     `gorm:"type:numeric(12,2);not null;default:0"`
	OriginalPrice float64                     `gorm:"type:numeric(12,2);default:0"`
	Image         string                      `gorm:"type:text"`
	Category      string                      `gorm:"type:varchar(64);index"`
	Department    string                      `gorm:"type:varchar(128);index"`
	SubCategory   string                      `gorm:"type:varchar(128);index"`
	Rating        float64                     `gorm:"type:numeric(3,2);default:0"`
	Reviews       int                         `gorm:"default:0"`
	Stock         int                         `gorm:"not null;default:0"`
	Status        string                      `gorm:"type:varchar(20);not null;default:'in_stock'"`
	IsActive      bool                        `gorm:"not null;default:true;index"`
	Tags          datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	CreatedAt     time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt     time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt              `gorm:"index"`
}

func (Product) TableName() string {
	return "products"
}

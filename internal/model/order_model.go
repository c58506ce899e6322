package model

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Reference string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	Customer  string    `gorm:"type:varchar(255);not null"`
	Amount    float64   `gorm:"type:numeric(12,2);not null"`
	Status    string    `gorm:"type:varchar(20);not null;index"`
	Date      string    `gorm:"type:varchar(10);not null"` // YYYY-MM-DD
	Items     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}

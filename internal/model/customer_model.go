package model

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Reference string    `gorm:"type:varchar(32);uniqueIndex;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null;index"`
	Role      string    `gorm:"type:varchar(32);not null;default:'Student'"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active'"`
	JoinDate  string    `gorm:"type:varchar(10);not null"`
	Orders    int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Customer) TableName() string {
	return "customers"
}

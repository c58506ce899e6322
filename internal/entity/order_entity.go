package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderCompleted  = "completed"
	OrderPending    = "pending"
	OrderProcessing = "processing"
	OrderCancelled  = "cancelled"
)

type Order struct {
	Id        uuid.UUID
	Reference string
	Customer  string
	Amount    float64
	Status    string
	Date      string
	Items     int
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type Customer struct {
	Id        uuid.UUID
	Reference string
	Name      string
	Email     string
	Role      string
	Status    string
	JoinDate  string
	Orders    int
	CreatedAt time.Time
	UpdatedAt *time.Time
}

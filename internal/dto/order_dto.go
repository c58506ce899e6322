package dto

import (
	"time"

	"github.com/google/uuid"
)

type OrderResponse struct {
	Id        uuid.UUID `json:"_id"`
	Reference string    `json:"id"`
	Customer  string    `json:"customer"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Date      string    `json:"date"`
	Items     int       `json:"items"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateOrderRequest struct {
	Reference string  `json:"id" validate:"omitempty,max=32"`
	Customer  string  `json:"customer" validate:"required,notblank,max=255"`
	Amount    float64 `json:"amount" validate:"min=0"`
	Status    string  `json:"status" validate:"required,oneof=completed pending processing cancelled"`
	Date      string  `json:"date" validate:"required,datetime=2006-01-02"`
	Items     int     `json:"items" validate:"min=1"`
}

type CustomerResponse struct {
	Id        uuid.UUID `json:"_id"`
	Reference string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	JoinDate  string    `json:"joinDate"`
	Orders    int       `json:"orders"`
	CreatedAt time.Time `json:"createdAt"`
}

type PageRequest struct {
	Page  int `query:"page" validate:"min=0"`
	Limit int `query:"limit" validate:"min=0,max=100"`
}

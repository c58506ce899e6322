package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	StockInStock    = "in_stock"
	StockLow        = "low_stock"
	StockOutOfStock = "out_of_stock"

	// LowStockThreshold is the stock level at or below which a product is low_stock.
	LowStockThreshold = 10
)

type Product struct {
	Id            uuid.UUID
	Sku           string
	Name          string
	Description   string
	Price         float64
	OriginalPrice float64
	Image         string
	Category      string // department code
	Department    string // department full name
	SubCategory   string
	Rating        float64
	Reviews       int
	Stock         int
	Status        string
	IsActive      bool
	Tags          []string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// StockStatus derives in_stock / low_stock / out_of_stock from a stock count.
func StockStatus(stock int) string {
	switch {
	case stock <= 0:
		return StockOutOfStock
	case stock <= LowStockThreshold:
		return StockLow
	default:
		return StockInStock
	}
}

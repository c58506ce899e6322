package dto

import (
	"time"

	"github.com/google/uuid"
)

type ProductResponse struct {
	Id            uuid.UUID  `json:"id"`
	Sku           string     `json:"sku"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Price         float64    `json:"price"`
	OriginalPrice float64    `json:"originalPrice"`
	Image         string     `json:"image"`
	Category      string     `json:"category"`
	Department    string     `json:"department"`
	SubCategory   string     `json:"subCategory"`
	Rating        float64    `json:"rating"`
	Reviews       int        `json:"reviews"`
	Stock         int        `json:"stock"`
	Status        string     `json:"status"`
	IsActive      bool       `json:"isActive"`
	Tags          []string   `json:"tags"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

type ListProductsRequest struct {
	Department  string `query:"department" validate:"max=128"`
	SubCategory string `query:"subCategory" validate:"max=128"`
	Page        int    `query:"page" validate:"min=0"`
	Limit       int    `query:"limit" validate:"min=0,max=100"`
}

type ListMeta struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// ListResponse is the {data, meta} shape shared by the listing endpoints.
type ListResponse[T any] struct {
	Data []T      `json:"data"`
	Meta ListMeta `json:"meta"`
}

type ImportProductItem struct {
	Sku           string   `json:"sku" validate:"omitempty,max=32"`
	Name          string   `json:"name" validate:"required,notblank,max=255"`
	Description   string   `json:"description"`
	Price         float64  `json:"price" validate:"min=0"`
	OriginalPrice float64  `json:"originalPrice" validate:"min=0"`
	Image         string   `json:"image" validate:"omitempty,url"`
	Category      string   `json:"category" validate:"required,notblank"`
	SubCategory   string   `json:"subCategory"`
	Rating        float64  `json:"rating" validate:"min=0,max=5"`
	Reviews       int      `json:"reviews" validate:"min=0"`
	Stock         int      `json:"stock" validate:"min=0"`
	Tags          []string `json:"tags"`
}

type ImportProductsRequest struct {
	Products []ImportProductItem `json:"products" validate:"required,min=1,max=500,dive"`
}

type ImportProductsResponse struct {
	Imported int      `json:"imported"`
	Skus     []string `json:"skus"`
}

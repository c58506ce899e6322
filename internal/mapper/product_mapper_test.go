package mapper

import (
	"testing"
	"time"

	"spi-eshop-be/internal/entity"
	"spi-eshop-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestProductMapperDerivesStatus(t *testing.T) {
	m := NewProductMapper()

	tests := []struct {
		stock int
		want  string
	}{
		{0, entity.StockOutOfStock},
		{-3, entity.StockOutOfStock},
		{8, entity.StockLow},
		{10, entity.StockLow},
		{11, entity.StockInStock},
	}
	for _, tt := range tests {
		got := m.ToModel(&entity.Product{Name: "x", Stock: tt.stock})
		assert.Equal(t, tt.want, got.Status, "stock %d", tt.stock)
	}

	explicit := m.ToModel(&entity.Product{Stock: 0, Status: entity.StockInStock})
	assert.Equal(t, entity.StockInStock, explicit.Status)
}

func TestProductMapperRoundTrip(t *testing.T) {
	m := NewProductMapper()
	now := time.Now()
	in := &model.Product{
		Id:         uuid.New(),
		Sku:        "PROD-003",
		Name:       "Arduino Starter Kit",
		Department: "Computer Science & Technology",
		IsActive:   true,
		Stock:      45,
		Status:     entity.StockInStock,
		CreatedAt:  now,
	}

	e := m.ToEntity(in)
	assert.NotNil(t, e.Tags, "tags default to an empty list")
	assert.Nil(t, e.UpdatedAt)

	out := m.ToModel(e)
	assert.Equal(t, in.Id, out.Id)
	assert.Equal(t, in.Sku, out.Sku)
	assert.Equal(t, in.Department, out.Department)
	assert.True(t, out.IsActive)
	assert.True(t, out.UpdatedAt.IsZero())
}

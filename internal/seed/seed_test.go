package seed

import (
	"testing"

	"spi-eshop-be/internal/entity"
	"spi-eshop-be/pkg/department"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducts_MatchCatalog(t *testing.T) {
	catalog := department.Default()
	products := Products()
	require.Len(t, products, 16)

	skus := map[string]bool{}
	for _, p := range products {
		assert.False(t, skus[p.Sku], "duplicate sku %s", p.Sku)
		skus[p.Sku] = true

		dept, ok := catalog.ByCode(p.Category)
		require.True(t, ok, p.Name)
		assert.Equal(t, dept.FullName, p.Department, p.Name)
		canonical, ok := dept.HasSubCategory(p.SubCategory)
		assert.True(t, ok, "%s: %s", p.Name, p.SubCategory)
		assert.Equal(t, canonical, p.SubCategory)
		assert.Equal(t, entity.StockStatus(p.Stock), p.Status)
		assert.True(t, p.IsActive)
	}
	assert.Equal(t, "PROD-001", products[0].Sku)
	assert.Equal(t, "PROD-016", products[15].Sku)
}

func TestProducts_ReturnsFreshCopies(t *testing.T) {
	a := Products()
	a[0].Name = "changed"
	assert.Equal(t, "Arduino Uno R3 Microcontroller", Products()[0].Name)
}

func TestOrdersAndCustomers(t *testing.T) {
	assert.Len(t, Orders(), 5)
	assert.Len(t, Customers(), 3)
	assert.Equal(t, entity.OrderCancelled, Orders()[4].Status)
}

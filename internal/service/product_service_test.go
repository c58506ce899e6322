package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"spi-eshop-be/internal/dto"
	"spi-eshop-be/internal/pkg/logger"
	"spi-eshop-be/pkg/department"
	"spi-eshop-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductFixture(seedOnEmpty bool) (IProductService, *store, *memCache, *fakeEvents) {
	s := &store{}
	c := newMemCache()
	evts := &fakeEvents{}
	svc := NewProductService(fakeFactory{s}, department.Default(), c, time.Hour, seedOnEmpty, evts, logger.NewNopLogger())
	return svc, s, c, evts
}

func TestProductService_ListSeedsEmptyStore(t *testing.T) {
	svc, s, _, _ := newProductFixture(true)

	res, err := svc.List(context.Background(), &dto.ListProductsRequest{})
	require.NoError(t, err)

	assert.Len(t, s.products, 16)
	assert.Equal(t, int64(16), res.Meta.Total)
	assert.Equal(t, 1, res.Meta.Page)
	assert.Equal(t, 10, res.Meta.Limit)
	assert.Len(t, res.Data, 10)

	// second call must not seed twice
	_, err = svc.List(context.Background(), &dto.ListProductsRequest{Page: 2})
	require.NoError(t, err)
	assert.Len(t, s.products, 16)
}

func TestProductService_ListWithoutSeeding(t *testing.T) {
	svc, s, _, _ := newProductFixture(false)

	res, err := svc.List(context.Background(), &dto.ListProductsRequest{})
	require.NoError(t, err)
	assert.Empty(t, s.products)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}

func TestProductService_ListFiltersByDepartmentCode(t *testing.T) {
	svc, _, _, _ := newProductFixture(true)

	res, err := svc.List(context.Background(), &dto.ListProductsRequest{Department: "rac"})
	require.NoError(t, err)
	require.Len(t, res.Data, 1)
	assert.Equal(t, "Refrigeration Compressor Unit", res.Data[0].Name)

	res, err = svc.List(context.Background(), &dto.ListProductsRequest{Department: "Civil Technology", SubCategory: "Drafting Gear"})
	require.NoError(t, err)
	assert.Len(t, res.Data, 2)
}

func TestProductService_ListServedFromCache(t *testing.T) {
	svc, s, c, _ := newProductFixture(true)
	ctx := context.Background()

	first, err := svc.List(ctx, &dto.ListProductsRequest{Department: "CST"})
	require.NoError(t, err)
	assert.Equal(t, 1, c.len())

	// Mutate the store behind the cache; the cached page is still served.
	s.mu.Lock()
	s.products = s.products[:0]
	s.mu.Unlock()

	second, err := svc.List(ctx, &dto.ListProductsRequest{Department: "cst"})
	require.NoError(t, err)
	assert.Equal(t, first.Meta.Total, second.Meta.Total)
	assert.Len(t, second.Data, len(first.Data))
}

func TestProductService_ImportInvalidatesCacheAndPublishes(t *testing.T) {
	svc, s, c, evts := newProductFixture(true)
	ctx := context.Background()

	_, err := svc.List(ctx, &dto.ListProductsRequest{})
	require.NoError(t, err)
	require.Equal(t, 1, c.len())

	res, err := svc.Import(ctx, &dto.ImportProductsRequest{Products: []dto.ImportProductItem{
		{Sku: "PROD-100", Name: "Split AC Trainer", Category: "Air Conditioning", SubCategory: "hvac systems", Stock: 5, Price: 45000},
		{Name: "Breadboard", Category: "Electronics", SubCategory: "Components", Stock: 0},
	}})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, "PROD-100", res.Skus[0])
	assert.Regexp(t, `^PROD-[0-9A-F]{8}$`, res.Skus[1])
	assert.Zero(t, c.len())
	assert.Equal(t, []string{events.ProductsImported}, evts.types())

	s.mu.Lock()
	defer s.mu.Unlock()
	require.Len(t, s.products, 18)
	ac := s.products[16]
	assert.Equal(t, "RAC", ac.Category)
	assert.Equal(t, "Refrigeration and Air Conditioning", ac.Department)
	assert.Equal(t, "HVAC Systems", ac.SubCategory)
	assert.Equal(t, "low_stock", ac.Status)
	assert.Equal(t, "out_of_stock", s.products[17].Status)
}

func TestProductService_ImportRejectsUnknownDepartment(t *testing.T) {
	svc, s, _, evts := newProductFixture(false)

	_, err := svc.Import(context.Background(), &dto.ImportProductsRequest{Products: []dto.ImportProductItem{
		{Name: "Good", Category: "CST"},
		{Name: "Bad", Category: "Mechanical"},
	}})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadRequest, reqErr.Status)
	assert.Contains(t, reqErr.Message, "products[1]")
	assert.Empty(t, s.products)
	assert.Empty(t, evts.types())
}

func TestProductService_ImportRejectsForeignSubCategory(t *testing.T) {
	svc, _, _, _ := newProductFixture(false)

	_, err := svc.Import(context.Background(), &dto.ImportProductsRequest{Products: []dto.ImportProductItem{
		{Name: "Theodolite", Category: "CST", SubCategory: "Surveying Tools"},
	}})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
}

func TestProductService_Show(t *testing.T) {
	svc, s, _, _ := newProductFixture(true)
	_, err := svc.Seed(context.Background())
	require.NoError(t, err)

	got, err := svc.Show(context.Background(), s.products[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "PROD-001", got.Sku)

	_, err = svc.Show(context.Background(), [16]byte{1})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusNotFound, reqErr.Status)
}

func TestListCacheKeyIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, listCacheKey("CST", "Hardware", 1, 10), listCacheKey(" cst ", "hardware", 1, 10))
	assert.NotEqual(t, listCacheKey("CST", "", 1, 10), listCacheKey("CST", "", 2, 10))
}

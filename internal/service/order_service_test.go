package service

import (
	"context"
	"net/http"
	"testing"

	"spi-eshop-be/internal/dto"
	"spi-eshop-be/internal/pkg/logger"
	"spi-eshop-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_ListSeedsOnce(t *testing.T) {
	s := &store{}
	svc := NewOrderService(fakeFactory{s}, true, &fakeEvents{}, logger.NewNopLogger())
	ctx := context.Background()

	orders, err := svc.ListOrders(ctx, &dto.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(5), orders.Meta.Total)
	assert.Len(t, orders.Data, 5)

	customers, err := svc.ListCustomers(ctx, &dto.PageRequest{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(3), customers.Meta.Total)
	assert.Len(t, customers.Data, 2)
	assert.Equal(t, 2, customers.Meta.Limit)

	assert.Len(t, s.orders, 5)
	assert.Len(t, s.customers, 3)
}

func TestOrderService_SeedFillsOnlyEmptyTables(t *testing.T) {
	s := &store{}
	svc := NewOrderService(fakeFactory{s}, false, &fakeEvents{}, logger.NewNopLogger())
	ctx := context.Background()

	_, err := svc.CreateOrder(ctx, &dto.CreateOrderRequest{Customer: "Ada", Amount: 10, Status: "pending", Date: "2024-04-01", Items: 1})
	require.NoError(t, err)

	orders, customers, err := svc.Seed(ctx)
	require.NoError(t, err)
	assert.Zero(t, orders)
	assert.Equal(t, 3, customers)
	assert.Len(t, s.orders, 1)
}

func TestOrderService_CreateOrder(t *testing.T) {
	s := &store{}
	evts := &fakeEvents{}
	svc := NewOrderService(fakeFactory{s}, false, evts, logger.NewNopLogger())
	ctx := context.Background()

	res, err := svc.CreateOrder(ctx, &dto.CreateOrderRequest{
		Reference: "ORD-900", Customer: " Grace Hopper ", Amount: 42.5, Status: "processing", Date: "2024-04-02", Items: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-900", res.Reference)
	assert.Equal(t, "Grace Hopper", res.Customer)
	assert.Equal(t, []string{events.OrderCreated}, evts.types())

	_, err = svc.CreateOrder(ctx, &dto.CreateOrderRequest{
		Reference: "ORD-900", Customer: "Someone", Status: "pending", Date: "2024-04-02", Items: 1,
	})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadRequest, reqErr.Status)
	assert.Len(t, s.orders, 1)
}

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"spi-eshop-be/internal/dto"
	"spi-eshop-be/internal/entity"
	"spi-eshop-be/internal/pkg/logger"
	"spi-eshop-be/internal/repository/specification"
	"spi-eshop-be/internal/repository/unitofwork"
	"spi-eshop-be/internal/seed"
	"spi-eshop-be/pkg/events"

	"github.com/google/uuid"
)

const orderModule = "ORDER_SERVICE"

type IOrderService interface {
	ListOrders(ctx context.Context, req *dto.PageRequest) (*dto.ListResponse[dto.OrderResponse], error)
	CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.OrderResponse, error)
	ListCustomers(ctx context.Context, req *dto.PageRequest) (*dto.ListResponse[dto.CustomerResponse], error)
	Seed(ctx context.Context) (orders int, customers int, err error)
}

type orderService struct {
	uowFactory     unitofwork.RepositoryFactory
	seedOnEmpty    bool
	eventPublisher IEventPublisher
	logger         logger.ILogger

	seedMu sync.Mutex
}

func NewOrderService(
	uowFactory unitofwork.RepositoryFactory,
	seedOnEmpty bool,
	eventPublisher IEventPublisher,
	logger logger.ILogger,
) IOrderService {
	return &orderService{
		uowFactory:     uowFactory,
		seedOnEmpty:    seedOnEmpty,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (s *orderService) ListOrders(ctx context.Context, req *dto.PageRequest) (*dto.ListResponse[dto.OrderResponse], error) {
	s.seedIfEmpty(ctx)

	page, limit := normalizePage(req.Page, req.Limit)
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.OrderRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := uow.OrderRepository().FindAll(ctx,
		specification.OrderBy{Field: "date", Desc: true},
		specification.OrderBy{Field: "reference", Desc: false},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	if err != nil {
		return nil, err
	}

	data := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		data = append(data, toOrderResponse(o))
	}
	return &dto.ListResponse[dto.OrderResponse]{
		Data: data,
		Meta: dto.ListMeta{Total: total, Page: page, Limit: limit},
	}, nil
}

func (s *orderService) CreateOrder(ctx context.Context, req *dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	reference := strings.TrimSpace(req.Reference)
	if reference == "" {
		reference = "ORD-" + strings.ToUpper(uuid.NewString()[:8])
	}

	order := &entity.Order{
		Reference: reference,
		Customer:  strings.TrimSpace(req.Customer),
		Amount:    req.Amount,
		Status:    req.Status,
		Date:      req.Date,
		Items:     req.Items,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, err := uow.OrderRepository().FindAll(ctx, specification.ByReference{Reference: reference}, specification.Pagination{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, badRequest(fmt.Sprintf("order %s already exists", reference))
	}

	if err := uow.OrderRepository().Create(ctx, order); err != nil {
		return nil, err
	}

	s.eventPublisher.Publish(ctx, events.OrderCreated, map[string]interface{}{
		"order_id":  order.Id,
		"reference": order.Reference,
		"amount":    order.Amount,
		"status":    order.Status,
	})

	res := toOrderResponse(order)
	return &res, nil
}

func (s *orderService) ListCustomers(ctx context.Context, req *dto.PageRequest) (*dto.ListResponse[dto.CustomerResponse], error) {
	s.seedIfEmpty(ctx)

	page, limit := normalizePage(req.Page, req.Limit)
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.CustomerRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := uow.CustomerRepository().FindAll(ctx,
		specification.OrderBy{Field: "reference", Desc: false},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	if err != nil {
		return nil, err
	}

	data := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		data = append(data, dto.CustomerResponse{
			Id:        c.Id,
			Reference: c.Reference,
			Name:      c.Name,
			Email:     c.Email,
			Role:      c.Role,
			Status:    c.Status,
			JoinDate:  c.JoinDate,
			Orders:    c.Orders,
			CreatedAt: c.CreatedAt,
		})
	}
	return &dto.ListResponse[dto.CustomerResponse]{
		Data: data,
		Meta: dto.ListMeta{Total: total, Page: page, Limit: limit},
	}, nil
}

// Seed fills the orders and customers tables independently when each is empty.
func (s *orderService) Seed(ctx context.Context) (int, int, error) {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	orderCount, err := uow.OrderRepository().Count(ctx)
	if err != nil {
		return 0, 0, err
	}
	customerCount, err := uow.CustomerRepository().Count(ctx)
	if err != nil {
		return 0, 0, err
	}
	if orderCount > 0 && customerCount > 0 {
		return 0, 0, nil
	}

	if err := uow.Begin(ctx); err != nil {
		return 0, 0, err
	}
	defer uow.Rollback()

	var orders, customers int
	if orderCount == 0 {
		rows := seed.Orders()
		if err := uow.OrderRepository().CreateMany(ctx, rows); err != nil {
			return 0, 0, err
		}
		orders = len(rows)
	}
	if customerCount == 0 {
		rows := seed.Customers()
		if err := uow.CustomerRepository().CreateMany(ctx, rows); err != nil {
			return 0, 0, err
		}
		customers = len(rows)
	}

	if err := uow.Commit(); err != nil {
		return 0, 0, err
	}

	s.logger.Info(orderModule, "Seeded orders and customers", map[string]interface{}{
		"orders":    orders,
		"customers": customers,
	})
	return orders, customers, nil
}

func (s *orderService) seedIfEmpty(ctx context.Context) {
	if !s.seedOnEmpty {
		return
	}
	if _, _, err := s.Seed(ctx); err != nil {
		s.logger.Warn(orderModule, "Seeding failed", map[string]interface{}{"error": err.Error()})
	}
}

func toOrderResponse(o *entity.Order) dto.OrderResponse {
	return dto.OrderResponse{
		Id:        o.Id,
		Reference: o.Reference,
		Customer:  o.Customer,
		Amount:    o.Amount,
		Status:    o.Status,
		Date:      o.Date,
		Items:     o.Items,
		CreatedAt: o.CreatedAt,
	}
}

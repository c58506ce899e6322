package contract

import (
	"context"

	"spi-eshop-be/internal/entity"
	"spi-eshop-be/internal/repository/specification"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	CreateMany(ctx context.Context, orders []*entity.Order) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type CustomerRepository interface {
	CreateMany(ctx context.Context, customers []*entity.Customer) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Customer, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

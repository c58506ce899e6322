package unitofwork

import (
	"context"

	"spi-eshop-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ProductRepository() contract.ProductRepository
	OrderRepository() contract.OrderRepository
	CustomerRepository() contract.CustomerRepository
	ChatLogRepository() contract.ChatLogRepository
}

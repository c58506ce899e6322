package mapper

import (
	"spi-eshop-be/internal/entity"
	"spi-eshop-be/internal/model"
)

type OrderMapper struct{}

func NewOrderMapper() *OrderMapper {
	return &OrderMapper{}
}

func (m *OrderMapper) ToEntity(o *model.Order) *entity.Order {
	if o == nil {
		return nil
	}
	return &entity.Order{
		Id:        o.Id,
		Reference: o.Reference,
		Customer:  o.Customer,
		Amount:    o.Amount,
		Status:    o.Status,
		Date:      o.Date,
		Items:     o.Items,
		CreatedAt: o.CreatedAt,
		UpdatedAt: optionalTime(o.UpdatedAt),
	}
}

func (m *OrderMapper) ToModel(o *entity.Order) *model.Order {
	if o == nil {
		return nil
	}
	return &model.Order{
		Id:        o.Id,
		Reference: o.Reference,
		Customer:  o.Customer,
		Amount:    o.Amount,
		Status:    o.Status,
		Date:      o.Date,
		Items:     o.Items,
		CreatedAt: o.CreatedAt,
		UpdatedAt: valueTime(o.UpdatedAt),
	}
}

func (m *OrderMapper) ToEntities(orders []*model.Order) []*entity.Order {
	entities := make([]*entity.Order, len(orders))
	for i, o := range orders {
		entities[i] = m.ToEntity(o)
	}
	return entities
}

func (m *OrderMapper) ToModels(orders []*entity.Order) []*model.Order {
	models := make([]*model.Order, len(orders))
	for i, o := range orders {
		models[i] = m.ToModel(o)
	}
	return models
}

type CustomerMapper struct{}

func NewCustomerMapper() *CustomerMapper {
	return &CustomerMapper{}
}

func (m *CustomerMapper) ToEntity(c *model.Customer) *entity.Customer {
	if c == nil {
		return nil
	}
	return &entity.Customer{
		Id:        c.Id,
		Reference: c.Reference,
		Name:      c.Name,
		Email:     c.Email,
		Role:      c.Role,
		Status:    c.Status,
		JoinDate:  c.JoinDate,
		Orders:    c.Orders,
		CreatedAt: c.CreatedAt,
		UpdatedAt: optionalTime(c.UpdatedAt),
	}
}

func (m *CustomerMapper) ToModel(c *entity.Customer) *model.Customer {
	if c == nil {
		return nil
	}
	return &model.Customer{
		Id:        c.Id,
		Reference: c.Reference,
		Name:      c.Name,
		Email:     c.Email,
		Role:      c.Role,
		Status:    c.Status,
		JoinDate:  c.JoinDate,
		Orders:    c.Orders,
		CreatedAt: c.CreatedAt,
		UpdatedAt: valueTime(c.UpdatedAt),
	}
}

func (m *CustomerMapper) ToEntities(customers []*model.Customer) []*entity.Customer {
	entities := make([]*entity.Customer, len(customers))
	for i, c := range customers {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *CustomerMapper) ToModels(customers []*entity.Customer) []*model.Customer {
	models := make([]*model.Customer, len(customers))
	for i, c := range customers {
		models[i] = m.ToModel(c)
	}
	return models
}

package mapper

import (
	"time"

	"spi-eshop-be/internal/entity"
	"spi-eshop-be/internal/model"

	"gorm.io/datatypes"
)

type ProductMapper struct{}

func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

func (m *ProductMapper) ToEntity(p *model.Product) *entity.Product {
	if p == nil {
		return nil
	}

	tags := []string(p.Tags)
	if tags == nil {
		tags = []string{}
	}

	return &entity.Product{
		Id:            p.Id,
		Sku:           p.Sku,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Category:      p.Category,
		Department:    p.Department,
		SubCategory:   p.SubCategory,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		Stock:         p.Stock,
		Status:        p.Status,
		IsActive:      p.IsActive,
		Tags:          tags,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     optionalTime(p.UpdatedAt),
	}
}

func (m *ProductMapper) ToModel(p *entity.Product) *model.Product {
	if p == nil {
		return nil
	}

	status := p.Status
	if status == "" {
		status = entity.StockStatus(p.Stock)
	}

	return &model.Product{
		Id:            p.Id,
		Sku:           p.Sku,
		Name:          p.Name,
		Description:   p.Description,
		Price:         p.Price,
		OriginalPrice: p.OriginalPrice,
		Image:         p.Image,
		Category:      p.Category,
		Department:    p.Department,
		SubCategory:   p.SubCategory,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		Stock:         p.Stock,
		Status:        status,
		IsActive:      p.IsActive,
		Tags:          datatypes.NewJSONSlice(p.Tags),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     valueTime(p.UpdatedAt),
	}
}

func (m *ProductMapper) ToEntities(products []*model.Product) []*entity.Product {
	entities := make([]*entity.Product, len(products))
	for i, p := range products {
		entities[i] = m.ToEntity(p)
	}
	return entities
}

func (m *ProductMapper) ToModels(products []*entity.Product) []*model.Product {
	models := make([]*model.Product, len(products))
	for i, p := range products {
		models[i] = m.ToModel(p)
	}
	return models
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func valueTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

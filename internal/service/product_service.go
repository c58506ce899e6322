package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"spi-eshop-be/internal/dto"
	"spi-eshop-be/internal/entity"
	"spi-eshop-be/internal/pkg/logger"
	"spi-eshop-be/internal/repository/specification"
	"spi-eshop-be/internal/repository/unitofwork"
	"spi-eshop-be/internal/seed"
	"spi-eshop-be/pkg/cache"
	"spi-eshop-be/pkg/department"
	"spi-eshop-be/pkg/events"

	"github.com/google/uuid"
)

const (
	productModule = "PRODUCT_SERVICE"

	productListCachePrefix = "products:list:"
	defaultPageLimit       = 10
)

type IProductService interface {
	List(ctx context.Context, req *dto.ListProductsRequest) (*dto.ListResponse[dto.ProductResponse], error)
	Show(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error)
	Import(ctx context.Context, req *dto.ImportProductsRequest) (*dto.ImportProductsResponse, error)
	Seed(ctx context.Context) (int, error)
}

type productService struct {
	uowFactory     unitofwork.RepositoryFactory
	catalog        *department.Catalog
	cache          cache.Client
	cacheTTL       time.Duration
	seedOnEmpty    bool
	eventPublisher IEventPublisher
	logger         logger.ILogger

	seedMu sync.Mutex
}

func NewProductService(
	uowFactory unitofwork.RepositoryFactory,
	catalog *department.Catalog,
	cacheClient cache.Client,
	cacheTTL time.Duration,
	seedOnEmpty bool,
	eventPublisher IEventPublisher,
	logger logger.ILogger,
) IProductService {
	if cacheClient == nil {
		cacheClient = cache.NoopClient{}
	}
	return &productService{
		uowFactory:     uowFactory,
		catalog:        catalog,
		cache:          cacheClient,
		cacheTTL:       cacheTTL,
		seedOnEmpty:    seedOnEmpty,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (s *productService) List(ctx context.Context, req *dto.ListProductsRequest) (*dto.ListResponse[dto.ProductResponse], error) {
	page, limit := normalizePage(req.Page, req.Limit)
	key := listCacheKey(req.Department, req.SubCategory, page, limit)

	if raw, err := s.cache.Get(ctx, key); err == nil {
		var cached dto.ListResponse[dto.ProductResponse]
		if err := json.Unmarshal(raw, &cached); err == nil {
			return &cached, nil
		}
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn(productModule, "Listing cache read failed", map[string]interface{}{"error": err.Error()})
	}

	if s.seedOnEmpty {
		if _, err := s.Seed(ctx); err != nil {
			s.logger.Warn(productModule, "Seeding products failed", map[string]interface{}{"error": err.Error()})
		}
	}

	filters := []specification.Specification{specification.ActiveProducts{}}
	if d := strings.TrimSpace(req.Department); d != "" {
		// Accept a code, full name or alias; products store the full name.
		if dept, ok := s.catalog.Resolve(d); ok {
			d = dept.FullName
		}
		filters = append(filters, specification.ByDepartment{Department: d})
	}
	if sc := strings.TrimSpace(req.SubCategory); sc != "" {
		filters = append(filters, specification.BySubCategory{SubCategory: sc})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	total, err := uow.ProductRepository().Count(ctx, filters...)
	if err != nil {
		return nil, err
	}

	specs := append(filters,
		specification.OrderBy{Field: "sku", Desc: false},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)
	products, err := uow.ProductRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := &dto.ListResponse[dto.ProductResponse]{
		Data: toProductResponses(products),
		Meta: dto.ListMeta{Total: total, Page: page, Limit: limit},
	}

	if raw, err := json.Marshal(out); err == nil {
		if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
			s.logger.Warn(productModule, "Listing cache write failed", map[string]interface{}{"error": err.Error()})
		}
	}

	return out, nil
}

func (s *productService) Show(ctx context.Context, id uuid.UUID) (*dto.ProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	product, err := uow.ProductRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, notFound("Product not found")
	}

	res := toProductResponse(product)
	return &res, nil
}

func (s *productService) Import(ctx context.Context, req *dto.ImportProductsRequest) (*dto.ImportProductsResponse, error) {
	products := make([]*entity.Product, 0, len(req.Products))
	for i, item := range req.Products {
		p, err := s.productFromImport(item)
		if err != nil {
			return nil, badRequest(fmt.Sprintf("products[%d]: %s", i, err.Error()))
		}
		products = append(products, p)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ProductRepository().CreateMany(ctx, products); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)

	skus := make([]string, 0, len(products))
	for _, p := range products {
		skus = append(skus, p.Sku)
	}
	s.logger.Info(productModule, "Products imported", map[string]interface{}{"count": len(products)})
	s.eventPublisher.Publish(ctx, events.ProductsImported, map[string]interface{}{
		"count": len(products),
		"skus":  skus,
	})

	return &dto.ImportProductsResponse{Imported: len(products), Skus: skus}, nil
}

// Seed inserts the demo catalog when the products table is empty and
// reports how many rows were written.
func (s *productService) Seed(ctx context.Context) (int, error) {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	count, err := uow.ProductRepository().Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	products := seed.Products()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer uow.Rollback()

	if err := uow.ProductRepository().CreateMany(ctx, products); err != nil {
		return 0, err
	}
	if err := uow.Commit(); err != nil {
		return 0, err
	}

	s.invalidateListings(ctx)
	s.logger.Info(productModule, "Seeded products", map[string]interface{}{"count": len(products)})
	return len(products), nil
}

func (s *productService) productFromImport(item dto.ImportProductItem) (*entity.Product, error) {
	dept, ok := s.catalog.Resolve(item.Category)
	if !ok {
		return nil, fmt.Errorf("unknown department %q", item.Category)
	}

	subCategory := strings.TrimSpace(item.SubCategory)
	if subCategory != "" {
		canonical, ok := dept.HasSubCategory(subCategory)
		if !ok {
			return nil, fmt.Errorf("unknown sub-category %q for %s", subCategory, dept.Code)
		}
		subCategory = canonical
	}

	sku := strings.TrimSpace(item.Sku)
	if sku == "" {
		sku = "PROD-" + strings.ToUpper(uuid.NewString()[:8])
	}

	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}

	return &entity.Product{
		Sku:           sku,
		Name:          strings.TrimSpace(item.Name),
		Description:   item.Description,
		Price:         item.Price,
		OriginalPrice: item.OriginalPrice,
		Image:         item.Image,
		Category:      dept.Code,
		Department:    dept.FullName,
		SubCategory:   subCategory,
		Rating:        item.Rating,
		Reviews:       item.Reviews,
		Stock:         item.Stock,
		Status:        entity.StockStatus(item.Stock),
		IsActive:      true,
		Tags:          tags,
	}, nil
}

func (s *productService) invalidateListings(ctx context.Context) {
	if err := s.cache.DeleteByPrefix(ctx, productListCachePrefix); err != nil {
		s.logger.Warn(productModule, "Listing cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
}

func listCacheKey(department, subCategory string, page, limit int) string {
	q := url.Values{}
	q.Set("department", strings.ToLower(strings.TrimSpace(department)))
	q.Set("subCategory", strings.ToLower(strings.TrimSpace(subCategory)))
	q.Set("page", fmt.Sprint(page))
	q.Set("limit", fmt.Sprint(limit))
	return productListCachePrefix + q.Encode()
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func toProductResponse(p *entity.Product) dto.ProductResponse {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.ProductResponse{
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
		UpdatedAt:     p.UpdatedAt,
	}
}

func toProductResponses(products []*entity.Product) []dto.ProductResponse {
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"spi-eshop-be/internal/entity"
	"spi-eshop-be/internal/repository/contract"
	"spi-eshop-be/internal/repository/specification"
	"spi-eshop-be/internal/repository/unitofwork"
	"spi-eshop-be/pkg/cache"
	"spi-eshop-be/pkg/llm"

	"github.com/google/uuid"
)

// store is an in-memory backing for the fake unit of work.
type store struct {
	mu        sync.Mutex
	products  []*entity.Product
	orders    []*entity.Order
	customers []*entity.Customer
	chatLogs  []*entity.ChatLog

	findErr     error
	productFind int
}

type fakeFactory struct{ s *store }

func (f fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUoW{s: f.s}
}

type fakeUoW struct{ s *store }

func (u *fakeUoW) Begin(ctx context.Context) error { return nil }
func (u *fakeUoW) Commit() error                   { return nil }
func (u *fakeUoW) Rollback() error                 { return nil }

func (u *fakeUoW) ProductRepository() contract.ProductRepository   { return &fakeProducts{u.s} }
func (u *fakeUoW) OrderRepository() contract.OrderRepository       { return &fakeOrders{u.s} }
func (u *fakeUoW) CustomerRepository() contract.CustomerRepository { return &fakeCustomers{u.s} }
func (u *fakeUoW) ChatLogRepository() contract.ChatLogRepository   { return &fakeChatLogs{u.s} }

func paginate[T any](rows []T, specs []specification.Specification) []T {
	for _, spec := range specs {
		if p, ok := spec.(specification.Pagination); ok {
			if p.Offset >= len(rows) {
				return []T{}
			}
			rows = rows[p.Offset:]
			if p.Limit > 0 && p.Limit < len(rows) {
				rows = rows[:p.Limit]
			}
		}
	}
	return rows
}

type fakeProducts struct{ s *store }

func productMatches(p *entity.Product, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch v := spec.(type) {
		case specification.ActiveProducts:
			if !p.IsActive {
				return false
			}
		case specification.ByDepartment:
			if p.Department != v.Department {
				return false
			}
		case specification.BySubCategory:
			if p.SubCategory != v.SubCategory {
				return false
			}
		case specification.ProductTextSearch:
			q := strings.ToLower(v.Query)
			if !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(p.Description), q) {
				return false
			}
		case specification.ByID:
			if p.Id != v.ID {
				return false
			}
		case specification.BySku:
			if p.Sku != v.Sku {
				return false
			}
		}
	}
	return true
}

func (r *fakeProducts) Create(ctx context.Context, p *entity.Product) error {
	return r.CreateMany(ctx, []*entity.Product{p})
}

func (r *fakeProducts) CreateMany(ctx context.Context, products []*entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range products {
		for _, existing := range r.s.products {
			if existing.Sku == p.Sku {
				return errors.New("duplicate key value violates unique constraint")
			}
		}
	}
	for _, p := range products {
		p.Id = uuid.New()
		p.CreatedAt = time.Now()
		cp := *p
		r.s.products = append(r.s.products, &cp)
	}
	return nil
}

func (r *fakeProducts) Update(ctx context.Context, p *entity.Product) error { return nil }

func (r *fakeProducts) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Product, error) {
	all, err := r.FindAll(ctx, specs...)
	if err != nil || len(all) == 0 {
		return nil, err
	}
	return all[0], nil
}

func (r *fakeProducts) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.productFind++
	if r.s.findErr != nil {
		return nil, r.s.findErr
	}

	var out []*entity.Product
	for _, p := range r.s.products {
		if productMatches(p, specs) {
			cp := *p
			out = append(out, &cp)
		}
	}
	for _, spec := range specs {
		if o, ok := spec.(specification.OrderBy); ok && o.Field == "rating" {
			sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
		}
	}
	return paginate(out, specs), nil
}

func (r *fakeProducts) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, p := range r.s.products {
		if productMatches(p, specs) {
			n++
		}
	}
	return n, nil
}

type fakeOrders struct{ s *store }

func (r *fakeOrders) Create(ctx context.Context, o *entity.Order) error {
	return r.CreateMany(ctx, []*entity.Order{o})
}

func (r *fakeOrders) CreateMany(ctx context.Context, orders []*entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, o := range orders {
		o.Id = uuid.New()
		o.CreatedAt = time.Now()
		cp := *o
		r.s.orders = append(r.s.orders, &cp)
	}
	return nil
}

func (r *fakeOrders) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Order
	for _, o := range r.s.orders {
		keep := true
		for _, spec := range specs {
			if ref, ok := spec.(specification.ByReference); ok && o.Reference != ref.Reference {
				keep = false
			}
		}
		if keep {
			cp := *o
			out = append(out, &cp)
		}
	}
	return paginate(out, specs), nil
}

func (r *fakeOrders) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.orders)), nil
}

type fakeCustomers struct{ s *store }

func (r *fakeCustomers) CreateMany(ctx context.Context, customers []*entity.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, c := range customers {
		c.Id = uuid.New()
		cp := *c
		r.s.customers = append(r.s.customers, &cp)
	}
	return nil
}

func (r *fakeCustomers) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := append([]*entity.Customer(nil), r.s.customers...)
	return paginate(out, specs), nil
}

func (r *fakeCustomers) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.customers)), nil
}

type fakeChatLogs struct{ s *store }

func (r *fakeChatLogs) Create(ctx context.Context, l *entity.ChatLog) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	l.Id = uuid.New()
	l.CreatedAt = time.Now()
	cp := *l
	r.s.chatLogs = append(r.s.chatLogs, &cp)
	return nil
}

func (r *fakeChatLogs) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatLog, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.ChatLog
	for _, l := range r.s.chatLogs {
		keep := true
		for _, spec := range specs {
			if c, ok := spec.(specification.ByChannel); ok && l.Channel != c.Channel {
				keep = false
			}
		}
		if keep {
			out = append(out, l)
		}
	}
	return paginate(out, specs), nil
}

func (r *fakeChatLogs) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

// scriptedLLM always returns the same reply or error.
type scriptedLLM struct {
	mu    sync.Mutex
	reply string
	err   error
	calls int
}

func (p *scriptedLLM) Chat(ctx context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return p.reply, p.err
}

func (p *scriptedLLM) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, nil, opts...)
}

type recordedEvent struct {
	Type string
	Data map[string]interface{}
}

type fakeEvents struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (f *fakeEvents) Publish(ctx context.Context, eventType string, data map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{Type: eventType, Data: data})
}

func (f *fakeEvents) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Type)
	}
	return out
}

type fakePublisher struct {
	mu       sync.Mutex
	payloads [][]byte
	err      error
}

func (f *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.payloads = append(f.payloads, payload)
	return f.err
}

// memCache is a map-backed cache.Client.
type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	gets int
}

func newMemCache() *memCache {
	return &memCache{data: map[string][]byte{}}
}

func (c *memCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	v, ok := c.data[key]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return v, nil
}

func (c *memCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *memCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}

func (c *memCache) Close() error { return nil }

func (c *memCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

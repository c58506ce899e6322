package memory

import (
	"time"

	"spi-eshop-be/pkg/assistant/search"

	"github.com/patrickmn/go-cache"
)

// AnswerCache keeps recent successful AI search answers keyed by normalized query.
type AnswerCache struct {
	cache *cache.Cache
}

func NewAnswerCache(ttl time.Duration) *AnswerCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &AnswerCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (r *AnswerCache) Get(key string) (search.Result, bool) {
	if x, found := r.cache.Get(key); found {
		return x.(search.Result), true
	}
	return search.Result{}, false
}

func (r *AnswerCache) Set(key string, res search.Result) {
	r.cache.Set(key, res, cache.DefaultExpiration)
}

func (r *AnswerCache) Flush() {
	r.cache.Flush()
}

func (r *AnswerCache) Len() int {
	return r.cache.ItemCount()
}

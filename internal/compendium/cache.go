package compendium

import (
	"context"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/LootForge_Go/internal/domain"
	"github.com/osse101/LootForge_Go/internal/logger"
	"github.com/osse101/LootForge_Go/internal/loot"
	"github.com/osse101/LootForge_Go/internal/metrics"
)

// CachedResolver memoizes resolved documents in an expiring LRU.
// Failed lookups are not cached.
type CachedResolver struct {
	next loot.ItemResolver
	lru  *expirable.LRU[string, domain.ResolvedItem]
}

// NewCachedResolver wraps next. A non-positive size uses DefaultCacheSize;
// a zero ttl keeps entries until evicted by size.
func NewCachedResolver(next loot.ItemResolver, size int, ttl time.Duration) *CachedResolver {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &CachedResolver{
		next: next,
		lru:  expirable.NewLRU[string, domain.ResolvedItem](size, nil, ttl),
	}
}

func (c *CachedResolver) Resolve(ctx context.Context, entry domain.CatalogEntry) (*domain.ResolvedItem, error) {
	key := cacheKey(entry.Pack, entry.ID)
	if item, ok := c.lru.Get(key); ok {
		metrics.ResolverCacheLookups.WithLabelValues(metrics.CacheResultHit).Inc()
		return cloneItem(item), nil
	}
	metrics.ResolverCacheLookups.WithLabelValues(metrics.CacheResultMiss).Inc()

	item, err := c.next.Resolve(ctx, entry)
	if err != nil || item == nil {
		return item, err
	}
	c.lru.Add(key, *cloneItem(*item))
	return item, nil
}

// InvalidatePack drops every cached document of a pack.
func (c *CachedResolver) InvalidatePack(ctx context.Context, pack string) int {
	prefix := pack + CacheKeySep
	evicted := 0
	for _, key := range c.lru.Keys() {
		if strings.HasPrefix(key, prefix) && c.lru.Remove(key) {
			evicted++
		}
	}
	logger.FromContext(ctx).Debug(LogMsgResolverCacheEvict, LogFieldPack, pack, LogFieldEvicted, evicted)
	return evicted
}

// Len is the number of cached documents.
func (c *CachedResolver) Len() int {
	return c.lru.Len()
}

func cacheKey(pack, id string) string {
	return pack + CacheKeySep + id
}

// cloneItem keeps callers from mutating cached trait slices.
func cloneItem(item domain.ResolvedItem) *domain.ResolvedItem {
	item.Traits = append([]string(nil), item.Traits...)
	return &item
}

package client

import (
	"context"

	"github.com/s1lver0/cinemax-chat-go/internal/domain"
	"github.com/s1lver0/cinemax-chat-go/internal/infra/observability"
	"github.com/s1lver0/cinemax-chat-go/internal/port"

	"golang.org/x/sync/singleflight"
)

// catalogCacheKey — one document, one key.
const catalogCacheKey = "catalog"

// CachedCatalogProvider is a read-through cache in front of another
// CatalogProvider. Concurrent misses are collapsed into a single
// upstream fetch via singleflight, so a burst of requests after expiry
// pays the fetch+parse cost once instead of once per request.
//
// Re-fetching on every request stays available by simply not wrapping
// the client; main does that when the cache TTL is zero.
type CachedCatalogProvider struct {
	inner   port.CatalogProvider
	cache   port.Cache[*domain.Catalog]
	group   singleflight.Group
	metrics *observability.Metrics
}

// NewCachedCatalogProvider wraps inner with the given cache.
func NewCachedCatalogProvider(inner port.CatalogProvider, cache port.Cache[*domain.Catalog], metrics *observability.Metrics) *CachedCatalogProvider {
	return &CachedCatalogProvider{
		inner:   inner,
		cache:   cache,
		metrics: metrics,
	}
}

// Fetch returns the cached catalog when fresh, otherwise fetches it
// upstream (collapsing concurrent callers) and stores the result.
func (p *CachedCatalogProvider) Fetch(ctx context.Context) (*domain.Catalog, error) {
	if cat, ok := p.cache.Get(catalogCacheKey); ok {
		p.metrics.IncrCacheHit("catalog")
		return cat, nil
	}
	p.metrics.IncrCacheMiss("catalog")

	v, err, _ := p.group.Do(catalogCacheKey, func() (any, error) {
		cat, err := p.inner.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		p.cache.Set(catalogCacheKey, cat)
		return cat, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Catalog), nil
}

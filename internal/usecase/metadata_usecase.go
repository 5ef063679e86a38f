package usecase

import (
	"context"
	"log"
	"sync"

	"freight_portal/internal/domain/entities"
	"freight_portal/internal/usecase/interfaces"

	"golang.org/x/sync/singleflight"
)

// IMetadataUseCase serves the route metadata offered by the itinerary step.
type IMetadataUseCase interface {
	Get(ctx context.Context, token string) (entities.QuoteMetadata, error)
	Invalidate()
}

// MetadataCache memoizes quote metadata until Invalidate is called. There is
// no expiry.
type MetadataCache struct {
	quotes  interfaces.IQuoteGateway
	catalog interfaces.ICatalogGateway

	group singleflight.Group

	mu     sync.Mutex
	cached *entities.QuoteMetadata
	gen    uint64
}

var _ IMetadataUseCase = (*MetadataCache)(nil)

const metadataFlightKey = "quote-metadata"

func NewMetadataCache(quotes interfaces.IQuoteGateway, catalog interfaces.ICatalogGateway) *MetadataCache {
	return &MetadataCache{quotes: quotes, catalog: catalog}
}

// Get returns the cached metadata, loading it on first use. Concurrent first
// callers share one backend round-trip and each stops waiting when its own
// context ends. Failures are not cached.
func (c *MetadataCache) Get(ctx context.Context, token string) (entities.QuoteMetadata, error) {
	c.mu.Lock()
	if c.cached != nil {
		md := *c.cached
		c.mu.Unlock()
		return md, nil
	}
	gen := c.gen
	c.mu.Unlock()

	ch := c.group.DoChan(metadataFlightKey, func() (any, error) {
		return c.load(context.WithoutCancel(ctx), token, gen)
	})
	select {
	case <-ctx.Done():
		return entities.QuoteMetadata{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return entities.QuoteMetadata{}, res.Err
		}
		return res.Val.(entities.QuoteMetadata), nil
	}
}

func (c *MetadataCache) load(ctx context.Context, token string, gen uint64) (entities.QuoteMetadata, error) {
	md, err := c.quotes.Metadata(ctx, token)
	if err != nil {
		log.Printf("[metadata][usecase] load failed err=%v", err)
		return entities.QuoteMetadata{}, err
	}
	if c.catalog != nil {
		schedules, err := c.catalog.ListSchedules(ctx, token)
		if err != nil {
			log.Printf("[metadata][usecase] schedules unavailable err=%v", err)
		} else {
			md.Schedules = schedules
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		log.Printf("[metadata][usecase] load superseded by invalidation")
		return md, nil
	}
	c.cached = &md
	log.Printf("[metadata][usecase] cached origins=%d destinations=%d schedules=%d", len(md.Origins), len(md.Destinations), len(md.Schedules))
	return md, nil
}

func (c *MetadataCache) Invalidate() {
	c.mu.Lock()
	c.cached = nil
	c.gen++
	c.mu.Unlock()
	c.group.Forget(metadataFlightKey)
	log.Printf("[metadata][usecase] invalidated")
}

package service

import (
	"context"
	"time"

	"linkhub/internal/logger"
)

// CacheWarmerService refreshes the cached public views on a fixed tick.
type CacheWarmerService struct {
	catalog *CatalogService
	log     *logger.Logger
}

func NewCacheWarmerService(catalog *CatalogService, log *logger.Logger) *CacheWarmerService {
	if log == nil {
		log = logger.Nop()
	}
	return &CacheWarmerService{catalog: catalog, log: log}
}

// Run warms once immediately, then every tick until ctx is canceled. A
// non-positive tick disables the loop.
func (w *CacheWarmerService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		return
	}
	w.Warm(ctx)

	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			w.Warm(ctx)
		}
	}
}

// Warm reloads every public view from the store and writes it to the cache.
// A view whose load overlapped a write is skipped. Returns the number of
// views refreshed.
func (w *CacheWarmerService) Warm(ctx context.Context) int {
	c := w.catalog
	warmed := 0
	for _, includeEmpty := range []bool{false, true} {
		gen := c.gen.Load()
		cats, err := c.loadPublicCategories(ctx, includeEmpty)
		if err != nil {
			w.log.Warnw("cache_warm_failed", "view", "categories", "include_empty", includeEmpty, "error", err)
			continue
		}
		if c.storeIfCurrent(gen, func() { c.cache.SetCategories(ctx, includeEmpty, cats) }) {
			warmed++
		}
	}
	gen := c.gen.Load()
	grouped, err := c.loadLinksByTag(ctx)
	if err != nil {
		w.log.Warnw("cache_warm_failed", "view", "grouped", "error", err)
	} else if c.storeIfCurrent(gen, func() { c.cache.SetGrouped(ctx, grouped) }) {
		warmed++
	}
	w.log.Debugw("cache_warmed", "views", warmed)
	return warmed
}

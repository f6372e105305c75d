package render

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/grafo/pkg/cache"
	"github.com/matzehuels/grafo/pkg/observability"
)

const cacheKeyType = "render"

// Cached serves renders from a cache and fills it on a miss. Cache errors
// are logged and never fail a render.
type Cached struct {
	inner  Renderer
	cache  cache.Cache
	ttl    time.Duration
	logger *log.Logger
}

// NewCached wraps inner. A nil cache disables caching and a nil logger
// discards cache diagnostics.
func NewCached(inner Renderer, c cache.Cache, ttl time.Duration, logger *log.Logger) *Cached {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Cached{inner: inner, cache: c, ttl: ttl, logger: logger}
}

// ID implements [Renderer].
func (c *Cached) ID() string { return c.inner.ID() }

// Key returns the cache key of a render of dot as format.
func (c *Cached) Key(dot, format string) string {
	return cache.Key(cacheKeyType, c.inner.ID(), format, dot)
}

// Render returns a cached image if one exists, otherwise renders and stores it.
func (c *Cached) Render(ctx context.Context, dot, format string) ([]byte, error) {
	data, _, err := c.Lookup(ctx, dot, format)
	return data, err
}

// Lookup is Render that also reports whether the image came from the cache.
func (c *Cached) Lookup(ctx context.Context, dot, format string) ([]byte, bool, error) {
	key := c.Key(dot, format)
	hooks := observability.Cache()

	data, hit, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("cache read failed", "err", err)
	}
	if hit {
		hooks.OnCacheHit(ctx, cacheKeyType)
		c.logger.Debug("render cache hit", "renderer", c.inner.ID(), "format", format)
		return data, true, nil
	}
	hooks.OnCacheMiss(ctx, cacheKeyType)

	data, err = c.inner.Render(ctx, dot, format)
	if err != nil {
		return nil, false, err
	}

	if err := c.cache.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("cache write failed", "err", err)
		return data, false, nil
	}
	hooks.OnCacheSet(ctx, cacheKeyType, len(data))
	return data, false, nil
}

var _ Renderer = (*Cached)(nil)

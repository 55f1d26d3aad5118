package pikalba

import (
	"context"
	"sync"
	"time"

	"github.com/eringen/pikalba/backend"
	"github.com/eringen/pikalba/storefront"
)

// ContentCache is a storefront.Source that keeps blog posts and events in
// memory for a TTL, so views mounting together share one API round trip.
// Only successful responses are cached. Products and signups pass through.
type ContentCache struct {
	storefront.Source

	blog   cachedList[backend.BlogPost]
	events cachedList[backend.Event]
}

// NewContentCache wraps src with a TTL cache for blog posts and events.
func NewContentCache(src storefront.Source, ttl time.Duration) *ContentCache {
	return &ContentCache{
		Source: src,
		blog:   cachedList[backend.BlogPost]{ttl: ttl},
		events: cachedList[backend.Event]{ttl: ttl},
	}
}

// ListBlog returns cached blog posts, fetching them when stale.
func (c *ContentCache) ListBlog(ctx context.Context) ([]backend.BlogPost, error) {
	return c.blog.get(ctx, c.Source.ListBlog)
}

// ListEvents returns cached events, fetching them when stale.
func (c *ContentCache) ListEvents(ctx context.Context) ([]backend.Event, error) {
	return c.events.get(ctx, c.Source.ListEvents)
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *ContentCache) Invalidate() {
	c.blog.invalidate()
	c.events.invalidate()
}

type cachedList[T any] struct {
	mu      sync.RWMutex
	items   []T
	fetched time.Time
	ttl     time.Duration
}

func (l *cachedList[T]) valid() bool {
	return l.items != nil && time.Since(l.fetched) < l.ttl
}

func (l *cachedList[T]) invalidate() {
	l.mu.Lock()
	l.items = nil
	l.mu.Unlock()
}

// get tries a read lock first; it only takes the write lock, and calls
// fetch, when the entry is stale.
func (l *cachedList[T]) get(ctx context.Context, fetch func(context.Context) ([]T, error)) ([]T, error) {
	l.mu.RLock()
	if l.valid() {
		items := l.items
		l.mu.RUnlock()
		return items, nil
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.valid() {
		return l.items, nil
	}
	items, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	l.items = items
	l.fetched = time.Now()
	return items, nil
}

package pikalba

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/pikalba/backend"
	"github.com/eringen/pikalba/i18n"
	"github.com/eringen/pikalba/storefront"
)

type emptySource struct{}

func (emptySource) ListProducts(context.Context, string) ([]backend.Product, error) {
	return nil, nil
}

func (emptySource) ListBlog(context.Context) ([]backend.BlogPost, error) { return nil, nil }

func (emptySource) ListEvents(context.Context) ([]backend.Event, error) { return nil, nil }

func (emptySource) Subscribe(context.Context, string) error { return nil }

func newTestRegistry(ttl time.Duration) *viewRegistry {
	return newViewRegistry(ttl, func(l i18n.Locale) *storefront.View {
		return storefront.NewView(emptySource{}, storefront.WithLocale(l))
	})
}

func TestRegistryCreateAndGet(t *testing.T) {
	r := newTestRegistry(time.Hour)
	defer r.Close()

	id, v := r.Create(i18n.Spanish)
	require.NotEmpty(t, id)

	got, ok := r.Get(id)
	require.True(t, ok)
	assert.Same(t, v, got)
	assert.Equal(t, i18n.Spanish, got.Snapshot().Locale)

	_, ok = r.Get("")
	assert.False(t, ok)
	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistrySweepDropsIdleViews(t *testing.T) {
	r := newTestRegistry(time.Minute)
	defer r.Close()

	idle, _ := r.Create(i18n.English)
	fresh, _ := r.Create(i18n.English)

	r.mu.Lock()
	r.views[idle].lastSeen = time.Now().Add(-2 * time.Minute)
	r.mu.Unlock()

	r.sweep(time.Now())

	_, ok := r.Get(idle)
	assert.False(t, ok)
	_, ok = r.Get(fresh)
	assert.True(t, ok)
	assert.Equal(t, 1, r.Len())
}

func TestRegistryCloseReleasesViews(t *testing.T) {
	r := newTestRegistry(time.Hour)
	_, v := r.Create(i18n.English)
	v.Mount()

	r.Close()
	r.Close()

	assert.Equal(t, 0, r.Len())
	assert.NoError(t, v.Wait(context.Background()))
}

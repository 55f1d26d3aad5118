package storefront

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/eringen/pikalba/backend"
	"github.com/eringen/pikalba/i18n"
)

// Option configures a View.
type Option func(*View)

// WithLocale sets the initial locale.
func WithLocale(l i18n.Locale) Option {
	return func(v *View) { v.locale = l }
}

// WithLogger routes load and signup failures to log.
func WithLogger(log Logger) Option {
	return func(v *View) {
		if log != nil {
			v.log = log
		}
	}
}

// WithStrictNewsletter makes error statuses from the newsletter endpoint
// count as failed signups.
func WithStrictNewsletter(strict bool) Option {
	return func(v *View) { v.strictNewsletter = strict }
}

// View is the state of one storefront page.
//
// The catalog reloads whenever the category changes; only the response to
// the most recent request is kept. Blog entries and events load once, on
// Mount. All methods are safe for concurrent use.
type View struct {
	src              Source
	log              Logger
	strictNewsletter bool
	newsletter       *Newsletter

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	mount  sync.Once

	mu       sync.Mutex
	closed   bool
	mounted  bool
	locale   i18n.Locale
	category Category
	search   string
	products []backend.Product
	blog     []backend.BlogPost
	events   []backend.Event

	seq           uint64 // token of the latest catalog request
	cancelCatalog context.CancelFunc
	pending       int
	settled       chan struct{}
}

// NewView returns an unmounted view backed by src.
func NewView(src Source, opts ...Option) *View {
	v := &View{
		src:    src,
		log:    nopLogger{},
		locale: i18n.Default,
	}
	for _, opt := range opts {
		opt(v)
	}
	if _, ok := i18n.ParseLocale(string(v.locale)); !ok {
		v.locale = i18n.Default
	}
	v.ctx, v.cancel = context.WithCancel(context.Background())
	v.newsletter = NewNewsletter(src, v.log, v.strictNewsletter)
	return v
}

// Mount starts the first catalog load and the one-off content loads.
// Later calls do nothing.
func (v *View) Mount() {
	v.mount.Do(func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if v.closed {
			return
		}
		v.mounted = true
		v.loadCatalogLocked()
		v.loadContentLocked()
	})
}

// SetLocale switches the active translation bundle.
func (v *View) SetLocale(l i18n.Locale) {
	if _, ok := i18n.ParseLocale(string(l)); !ok {
		l = i18n.Default
	}
	v.mu.Lock()
	v.locale = l
	v.mu.Unlock()
}

// SelectCategory changes the category and, once mounted, reloads the
// catalog. Selecting the current category again does nothing.
func (v *View) SelectCategory(c Category) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if c == v.category {
		return
	}
	v.category = c
	if v.mounted && !v.closed {
		v.loadCatalogLocked()
	}
}

// SetSearch replaces the search term.
func (v *View) SetSearch(term string) {
	v.mu.Lock()
	v.search = term
	v.mu.Unlock()
}

// Newsletter returns the page's signup form.
func (v *View) Newsletter() *Newsletter { return v.newsletter }

// Wait blocks until no load is in flight or ctx is done.
func (v *View) Wait(ctx context.Context) error {
	v.mu.Lock()
	if v.pending == 0 {
		v.mu.Unlock()
		return nil
	}
	settled := v.settled
	v.mu.Unlock()

	select {
	case <-settled:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close cancels in-flight loads and waits for them to return.
func (v *View) Close() {
	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		return
	}
	v.closed = true
	v.mu.Unlock()

	v.cancel()
	v.wg.Wait()
}

func (v *View) loadCatalogLocked() {
	if v.cancelCatalog != nil {
		v.cancelCatalog()
	}
	v.seq++
	seq, category := v.seq, v.category
	ctx, cancel := context.WithCancel(v.ctx)
	v.cancelCatalog = cancel

	v.beginLocked()
	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		defer cancel()
		products, err := v.src.ListProducts(ctx, string(category))

		v.mu.Lock()
		defer v.mu.Unlock()
		defer v.endLocked()
		if seq != v.seq {
			v.log.Debugf("storefront: discarding stale catalog response for %q", category)
			return
		}
		if v.closed {
			return
		}
		if err != nil {
			v.log.Warnf("storefront: load products (category %q): %v", category, err)
			products = nil
		}
		v.products = orEmpty(products)
	}()
}

func (v *View) loadContentLocked() {
	ctx := v.ctx
	v.beginLocked()
	v.wg.Add(1)
	go func() {
		defer v.wg.Done()
		var g errgroup.Group
		g.Go(func() error {
			posts, err := v.src.ListBlog(ctx)
			if err != nil {
				v.log.Warnf("storefront: load blog: %v", err)
				posts = nil
			}
			v.mu.Lock()
			v.blog = orEmpty(posts)
			v.mu.Unlock()
			return nil
		})
		g.Go(func() error {
			events, err := v.src.ListEvents(ctx)
			if err != nil {
				v.log.Warnf("storefront: load events: %v", err)
				events = nil
			}
			v.mu.Lock()
			v.events = orEmpty(events)
			v.mu.Unlock()
			return nil
		})
		_ = g.Wait()

		v.mu.Lock()
		v.endLocked()
		v.mu.Unlock()
	}()
}

func (v *View) beginLocked() {
	if v.pending == 0 {
		v.settled = make(chan struct{})
	}
	v.pending++
}

func (v *View) endLocked() {
	v.pending--
	if v.pending == 0 {
		close(v.settled)
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

package pikalba

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/eringen/pikalba/i18n"
	"github.com/eringen/pikalba/storefront"
)

// viewRegistry keeps one storefront.View per browser session and drops
// views that have not been touched for ttl.
type viewRegistry struct {
	mu      sync.Mutex
	views   map[string]*viewEntry
	ttl     time.Duration
	newView func(i18n.Locale) *storefront.View

	stop chan struct{}
	done chan struct{}
	once sync.Once
}

type viewEntry struct {
	view     *storefront.View
	lastSeen time.Time
}

func newViewRegistry(ttl time.Duration, newView func(i18n.Locale) *storefront.View) *viewRegistry {
	r := &viewRegistry{
		views:   make(map[string]*viewEntry),
		ttl:     ttl,
		newView: newView,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go r.cleanup()
	return r
}

// Get returns the view for id and marks it as used.
func (r *viewRegistry) Get(id string) (*storefront.View, bool) {
	if id == "" {
		return nil, false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.views[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = time.Now()
	return e.view, true
}

// Create registers a fresh view and returns its id.
func (r *viewRegistry) Create(l i18n.Locale) (string, *storefront.View) {
	id := uuid.NewString()
	v := r.newView(l)
	r.mu.Lock()
	r.views[id] = &viewEntry{view: v, lastSeen: time.Now()}
	r.mu.Unlock()
	return id, v
}

// Len returns the number of live views.
func (r *viewRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

// sweep closes views idle since before now-ttl.
func (r *viewRegistry) sweep(now time.Time) {
	cutoff := now.Add(-r.ttl)
	var idle []*storefront.View
	r.mu.Lock()
	for id, e := range r.views {
		if e.lastSeen.Before(cutoff) {
			idle = append(idle, e.view)
			delete(r.views, id)
		}
	}
	r.mu.Unlock()
	for _, v := range idle {
		v.Close()
	}
}

func (r *viewRegistry) cleanup() {
	defer close(r.done)
	interval := r.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			r.sweep(now)
		case <-r.stop:
			return
		}
	}
}

// Close stops the sweeper and tears down every view.
func (r *viewRegistry) Close() {
	r.once.Do(func() {
		close(r.stop)
		<-r.done
		r.mu.Lock()
		views := r.views
		r.views = make(map[string]*viewEntry)
		r.mu.Unlock()
		for _, e := range views {
			e.view.Close()
		}
	})
}

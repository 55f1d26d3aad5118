package storefront

import (
	"github.com/eringen/pikalba/backend"
	"github.com/eringen/pikalba/i18n"
)

// Snapshot is a consistent copy of a View's state, ready to render.
type Snapshot struct {
	Locale   i18n.Locale
	Bundle   i18n.Bundle
	Category Category
	Search   string

	// Products is the last loaded catalog; Filtered is the subset matching
	// Search, in catalog order.
	Products []backend.Product
	Filtered []backend.Product
	Blog     []backend.BlogPost
	Events   []backend.Event

	Email  string
	Status Status

	// Loading is true while any load is in flight.
	Loading bool
}

// Snapshot captures the current state. The slices are shared with the view
// and must not be modified; the view only ever replaces them wholesale.
func (v *View) Snapshot() Snapshot {
	v.mu.Lock()
	s := Snapshot{
		Locale:   v.locale,
		Bundle:   i18n.For(v.locale),
		Category: v.category,
		Search:   v.search,
		Products: v.products,
		Blog:     v.blog,
		Events:   v.events,
		Loading:  v.pending > 0,
	}
	v.mu.Unlock()

	s.Filtered = Filter(s.Products, s.Search)
	s.Email = v.newsletter.Email()
	s.Status = v.newsletter.Status()
	return s
}

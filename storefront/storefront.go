// Package storefront holds the state behind one storefront page: the active
// locale, the category and search inputs, the data loaded from the remote
// API and the newsletter form.
//
// Loads run in the background. Failed loads fall back to empty lists; the
// page never sees an error from a read endpoint.
package storefront

import (
	"context"
	"strings"

	"github.com/eringen/pikalba/backend"
)

// Subscriber signs an email address up for the newsletter.
type Subscriber interface {
	Subscribe(ctx context.Context, email string) error
}

// Source is the remote API as seen by a View. *backend.Client implements it.
type Source interface {
	Subscriber
	ListProducts(ctx context.Context, category string) ([]backend.Product, error)
	ListBlog(ctx context.Context) ([]backend.BlogPost, error)
	ListEvents(ctx context.Context) ([]backend.Event, error)
}

// Logger is the subset of echo.Logger the storefront writes to.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}

// Category is a product grouping. All ("") means no filter.
type Category string

const (
	All        Category = ""
	Pickleball Category = "pickleball"
	Padel      Category = "padel"
	Beach      Category = "beach"
	Apparel    Category = "apparel"
)

var categories = []Category{All, Pickleball, Padel, Beach, Apparel}

// Categories returns every category in chip order, All first.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory maps a form value onto a Category.
func ParseCategory(s string) (Category, bool) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

func (c Category) String() string { return string(c) }

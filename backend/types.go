package backend

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is shown when a product carries no currency code.
const DefaultCurrency = "USD"

// Product is a catalog item as served by /api/products.
type Product struct {
	SKU      string          `json:"sku"`
	Title    string          `json:"title"`
	Brand    string          `json:"brand"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency,omitempty"`
	Tags     []string        `json:"tags"`
	Category string          `json:"category"`
}

// CurrencyCode returns the product currency, or DefaultCurrency when unset.
func (p Product) CurrencyCode() string {
	if c := strings.TrimSpace(p.Currency); c != "" {
		return c
	}
	return DefaultCurrency
}

// BlogPost is a blog teaser as served by /api/blog.
type BlogPost struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Event is an upcoming event as served by /api/events.
type Event struct {
	Title    string `json:"title"`
	Date     string `json:"date"` // ISO-8601 timestamp
	Location string `json:"location"`
	Link     string `json:"link,omitempty"`
}

// Key identifies an event for rendering. Two events sharing title and date
// share a key.
func (e Event) Key() string {
	return e.Title + e.Date
}

var eventLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Time parses Date. ok is false when the value is not a recognised ISO form.
func (e Event) Time() (t time.Time, ok bool) {
	raw := strings.TrimSpace(e.Date)
	for _, layout := range eventLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

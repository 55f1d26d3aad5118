package views

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/eringen/pikalba/backend"
	"github.com/eringen/pikalba/i18n"
	"github.com/eringen/pikalba/storefront"
)

var plainText = bluemonday.StrictPolicy()

// Price formats a product price as "<currency> $<amount>", two decimals.
func Price(p backend.Product) string {
	return fmt.Sprintf("%s $%s", p.CurrencyCode(), p.Price.StringFixed(2))
}

// Teaser strips any markup from blog content, leaving plain text.
func Teaser(content string) string {
	return strings.TrimSpace(html.UnescapeString(plainText.Sanitize(content)))
}

// EventDate renders an event date for l, or the raw value when it does not
// parse.
func EventDate(e backend.Event, l i18n.Locale) string {
	t, ok := e.Time()
	if !ok {
		return e.Date
	}
	return i18n.FormatDate(t, l)
}

// ChipClass returns CSS classes for a category chip, with active variant.
func ChipClass(active bool) string {
	base := "px-3 py-1 rounded-full border transition"
	if active {
		return base + " bg-emerald-600 text-white border-emerald-600"
	}
	return base + " bg-white border-emerald-200 text-emerald-700 hover:bg-emerald-50"
}

// CategoryLabel returns the chip label for c in b.
func CategoryLabel(b i18n.Bundle, c storefront.Category) string {
	return b.Categories.Label(string(c))
}

// safeURL returns raw when it is a relative link or an http(s)/mailto/tel
// URL, and "" otherwise.
func safeURL(raw string) string {
	val := strings.TrimSpace(raw)
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return val
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return val
	default:
		return ""
	}
}

package storefront

import (
	"strings"

	"github.com/eringen/pikalba/backend"
)

// Filter returns the products whose title or space-joined tags contain term,
// ignoring case. A blank term returns products itself. Order is preserved.
func Filter(products []backend.Product, term string) []backend.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return products
	}
	out := make([]backend.Product, 0, len(products))
	for _, p := range products {
		if matches(p, term) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p backend.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Title), term) {
		return true
	}
	return strings.Contains(strings.ToLower(strings.Join(p.Tags, " ")), term)
}

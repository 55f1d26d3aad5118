package storefront

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/pikalba/backend"
)

func sampleProducts() []backend.Product {
	return []backend.Product{
		{SKU: "P1", Title: "Padel Racket", Tags: []string{"padel", "racket"}, Category: "padel"},
		{SKU: "K1", Title: "Pickleball Paddle", Tags: []string{"pickleball", "carbon"}, Category: "pickleball"},
		{SKU: "A1", Title: "Recycled Tee", Tags: []string{"apparel", "organic cotton"}, Category: "apparel"},
		{SKU: "B1", Title: "Beach Volleyball", Tags: nil, Category: "beach"},
		{SKU: "A2", Title: "Court Shorts", Tags: []string{"apparel", "padel"}, Category: "apparel"},
	}
}

func TestFilterBlankTermReturnsInput(t *testing.T) {
	products := sampleProducts()
	for _, term := range []string{"", " ", "\t\n  "} {
		got := Filter(products, term)
		require.Len(t, got, len(products))
		assert.Same(t, &products[0], &got[0], "blank term %q should return the input slice", term)
	}
	assert.Nil(t, Filter(nil, ""))
}

func TestFilterMatchesTitleAndTags(t *testing.T) {
	tests := []struct {
		term string
		want []string
	}{
		{"racket", []string{"P1"}},
		{"PADEL", []string{"P1", "A2"}},
		{"  paddle ", []string{"K1"}},
		{"cotton", []string{"A1"}},
		{"apparel padel", []string{"A2"}},
		{"tennis", nil},
		{"volley", []string{"B1"}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			var skus []string
			for _, p := range Filter(sampleProducts(), tt.term) {
				skus = append(skus, p.SKU)
			}
			assert.Equal(t, tt.want, skus)
		})
	}
}

func TestFilterOutputIsOrderedSubsetOfMatches(t *testing.T) {
	products := sampleProducts()
	for _, term := range []string{"a", "p", "re", "org", "zzz"} {
		got := Filter(products, term)
		i := 0
		for _, p := range products {
			hit := strings.Contains(strings.ToLower(p.Title), term) ||
				strings.Contains(strings.ToLower(strings.Join(p.Tags, " ")), term)
			if !hit {
				continue
			}
			require.Less(t, i, len(got), "term %q dropped %s", term, p.SKU)
			assert.Equal(t, p.SKU, got[i].SKU, "term %q order", term)
			i++
		}
		assert.Len(t, got, i, "term %q kept a non-matching product", term)
	}
}

func TestFilterPadelScenario(t *testing.T) {
	products := []backend.Product{{SKU: "P1", Title: "Padel Racket", Tags: []string{"padel", "racket"}}}

	assert.Equal(t, products, Filter(products, ""))
	assert.Equal(t, products, Filter(products, "racket"))
	assert.Empty(t, Filter(products, "tennis"))
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, ok := ParseCategory(string(c))
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}
	got, ok := ParseCategory(" Padel ")
	assert.True(t, ok)
	assert.Equal(t, Padel, got)

	_, ok = ParseCategory("tennis")
	assert.False(t, ok)
}

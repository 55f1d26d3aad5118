// Package views renders the storefront page from a storefront.Snapshot.
// Components are plain templ.Components so handlers can render either the
// whole document or a single region for htmx swaps.
package views

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/eringen/pikalba/i18n"
	"github.com/eringen/pikalba/storefront"
)

// Region ids targeted by htmx swaps.
const (
	StorefrontID = "storefront"
	ProductsID   = "products"
	NewsletterID = "newsletter"
)

// page accumulates markup. Text is always escaped; raw is for literal tags.
type page struct {
	strings.Builder
}

func (p *page) raw(parts ...string) {
	for _, s := range parts {
		p.WriteString(s)
	}
}

func (p *page) text(s string) {
	p.WriteString(templ.EscapeString(s))
}

func (p *page) attr(name, value string) {
	p.raw(" ", name, `="`, templ.EscapeString(value), `"`)
}

func (p *page) csrf(token string) {
	if token == "" {
		return
	}
	p.raw(`<input type="hidden" name="_csrf"`)
	p.attr("value", token)
	p.raw(`/>`)
}

func component(fn func(p *page)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var p page
		fn(&p)
		_, err := io.WriteString(w, p.String())
		return err
	})
}

// Page renders the full HTML document.
func Page(s storefront.Snapshot, csrfToken string, year int) templ.Component {
	return component(func(p *page) {
		b := s.Bundle
		p.raw(`<!DOCTYPE html><html`)
		p.attr("lang", s.Locale.String())
		p.raw(`><head><meta charset="utf-8"/><meta name="viewport" content="width=device-width, initial-scale=1"/><title>`)
		p.text(b.Title)
		p.raw(`</title><meta name="description"`)
		p.attr("content", b.Subtitle)
		p.raw(`/><link rel="stylesheet" href="/public/styles.css"/><script src="/public/htmx.min.js" defer></script></head>`)
		p.raw(`<body class="min-h-screen bg-gradient-to-b from-emerald-50 to-sky-50 text-gray-900">`)
		writeStorefront(p, s, csrfToken)
		p.raw(`<footer class="py-8 text-center text-sm text-gray-600">© `, strconv.Itoa(year), ` Pikalba</footer>`)
		p.raw(`</body></html>`)
	})
}

// Storefront renders the swappable region holding header and main content.
func Storefront(s storefront.Snapshot, csrfToken string) templ.Component {
	return component(func(p *page) { writeStorefront(p, s, csrfToken) })
}

// ProductGrid renders the filtered product grid.
func ProductGrid(s storefront.Snapshot) templ.Component {
	return component(func(p *page) { writeProducts(p, s) })
}

// NewsletterForm renders the signup form and its status marker.
func NewsletterForm(s storefront.Snapshot, csrfToken string) templ.Component {
	return component(func(p *page) { writeNewsletter(p, s, csrfToken) })
}

// NotFound renders the 404 page.
func NotFound() templ.Component {
	return statusPage("Not found", "The page you are looking for does not exist.")
}

// ServerError renders the 500 page.
func ServerError() templ.Component {
	return statusPage("Something went wrong", "Please try again in a moment.")
}

func statusPage(title, msg string) templ.Component {
	return component(func(p *page) {
		p.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"/><title>`)
		p.text(title)
		p.raw(`</title></head><body class="min-h-screen flex items-center justify-center"><main class="text-center"><h1 class="text-2xl font-bold">`)
		p.text(title)
		p.raw(`</h1><p class="text-gray-600">`)
		p.text(msg)
		p.raw(`</p><a href="/" class="underline">Pikalba</a></main></body></html>`)
	})
}

func writeStorefront(p *page, s storefront.Snapshot, csrfToken string) {
	p.raw(`<div`)
	p.attr("id", StorefrontID)
	p.raw(`>`)
	writeHeader(p, s, csrfToken)
	p.raw(`<main class="max-w-6xl mx-auto px-4 py-6">`)
	writeTitleBar(p, s, csrfToken)
	writeCategories(p, s, csrfToken)
	writeProducts(p, s)
	writeBlog(p, s)
	writeEvents(p, s)
	p.raw(`<section class="mt-10 bg-emerald-700 text-white rounded-lg p-6 flex flex-col sm:flex-row items-center gap-3"><div class="text-lg font-semibold flex-1">`)
	p.text(s.Bundle.Newsletter)
	p.raw(`</div>`)
	writeNewsletter(p, s, csrfToken)
	p.raw(`</section></main></div>`)
}

func writeHeader(p *page, s storefront.Snapshot, csrfToken string) {
	p.raw(`<header class="sticky top-0 z-20 backdrop-blur bg-white/70 border-b border-emerald-100"><div class="max-w-6xl mx-auto px-4 py-3 flex items-center gap-3">`)
	p.raw(`<span class="font-black text-2xl tracking-tight text-emerald-700">Pikalba</span><span class="hidden sm:block text-sm text-gray-600">`)
	p.text(s.Bundle.Subtitle)
	p.raw(`</span><form class="ml-auto flex items-center gap-2" method="post" action="/locale" hx-post="/locale"`)
	p.attr("hx-target", "#"+StorefrontID)
	p.raw(` hx-swap="outerHTML" hx-trigger="change">`)
	p.csrf(csrfToken)
	p.raw(`<select name="locale" class="px-2 py-1 rounded border text-sm" onchange="if(!window.htmx)this.form.submit()">`)
	for _, l := range i18n.Locales() {
		p.raw(`<option`)
		p.attr("value", l.String())
		if l == s.Locale {
			p.raw(` selected`)
		}
		p.raw(`>`)
		p.text(l.Label())
		p.raw(`</option>`)
	}
	p.raw(`</select></form></div></header>`)
}

func writeTitleBar(p *page, s storefront.Snapshot, csrfToken string) {
	p.raw(`<div class="flex flex-col sm:flex-row gap-3 items-stretch sm:items-center"><h1 class="text-xl sm:text-2xl font-bold">`)
	p.text(s.Bundle.Title)
	p.raw(`</h1><form class="ml-auto flex-1 sm:flex-none" method="post" action="/search" hx-post="/search"`)
	p.attr("hx-target", "#"+ProductsID)
	p.raw(` hx-swap="outerHTML" hx-trigger="input changed delay:250ms, submit">`)
	p.csrf(csrfToken)
	p.raw(`<input type="search" name="q" class="w-full sm:w-72 px-3 py-2 rounded-md border border-emerald-200 focus:outline-none focus:ring-2 focus:ring-emerald-400"`)
	p.attr("value", s.Search)
	p.attr("placeholder", s.Bundle.Search)
	p.raw(`/></form></div>`)
}

func writeCategories(p *page, s storefront.Snapshot, csrfToken string) {
	p.raw(`<form class="mt-4 flex gap-2 overflow-x-auto pb-2" method="post" action="/category" hx-post="/category"`)
	p.attr("hx-target", "#"+StorefrontID)
	p.raw(` hx-swap="outerHTML">`)
	p.csrf(csrfToken)
	for _, c := range storefront.Categories() {
		p.raw(`<button type="submit" name="category"`)
		p.attr("value", c.String())
		p.attr("class", ChipClass(c == s.Category))
		p.raw(`>`)
		p.text(CategoryLabel(s.Bundle, c))
		p.raw(`</button>`)
	}
	p.raw(`</form>`)
}

func writeProducts(p *page, s storefront.Snapshot) {
	p.raw(`<section`)
	p.attr("id", ProductsID)
	p.raw(` class="mt-6 grid grid-cols-2 sm:grid-cols-3 lg:grid-cols-4 gap-4">`)
	for _, prod := range s.Filtered {
		p.raw(`<article class="bg-white rounded-lg shadow-sm border border-emerald-100 overflow-hidden flex flex-col"`)
		p.attr("data-sku", prod.SKU)
		p.raw(`><div class="aspect-square bg-emerald-50 flex items-center justify-center text-emerald-600 text-sm">`)
		p.text(prod.Brand)
		p.raw(`</div><div class="p-3 flex-1 flex flex-col"><h3 class="font-semibold line-clamp-2">`)
		p.text(prod.Title)
		p.raw(`</h3><p class="text-sm text-gray-500">`)
		p.text(Price(prod))
		p.raw(`</p><button type="button" class="mt-auto bg-emerald-600 hover:bg-emerald-700 text-white text-sm font-medium px-3 py-2 rounded-md">`)
		p.text(s.Bundle.Add)
		p.raw(`</button></div></article>`)
	}
	p.raw(`</section>`)
}

func writeBlog(p *page, s storefront.Snapshot) {
	p.raw(`<section class="mt-10"><h2 class="font-bold text-lg mb-3">`)
	p.text(s.Bundle.Blog)
	p.raw(`</h2><div class="grid grid-cols-1 sm:grid-cols-3 gap-4">`)
	for _, post := range s.Blog {
		p.raw(`<div class="bg-white rounded-lg p-4 border border-emerald-100"`)
		p.attr("data-slug", post.Slug)
		p.raw(`><h3 class="font-semibold">`)
		p.text(post.Title)
		p.raw(`</h3><p class="text-sm text-gray-600 line-clamp-3">`)
		p.text(Teaser(post.Content))
		p.raw(`</p></div>`)
	}
	p.raw(`</div></section>`)
}

func writeEvents(p *page, s storefront.Snapshot) {
	p.raw(`<section class="mt-10"><h2 class="font-bold text-lg mb-3">`)
	p.text(s.Bundle.Events)
	p.raw(`</h2><div class="space-y-2">`)
	for _, e := range s.Events {
		p.raw(`<div class="bg-white rounded-lg p-4 border border-emerald-100 flex items-center justify-between"`)
		p.attr("data-key", e.Key())
		p.raw(`><div><div class="font-medium">`)
		p.text(e.Title)
		p.raw(`</div><div class="text-sm text-gray-600">`)
		p.text(EventDate(e, s.Locale) + " · " + e.Location)
		p.raw(`</div></div>`)
		if href := safeURL(e.Link); href != "" {
			p.raw(`<a class="text-emerald-700 text-sm underline"`)
			p.attr("href", href)
			p.raw(`>`)
			p.text(s.Bundle.Details)
			p.raw(`</a>`)
		}
		p.raw(`</div>`)
	}
	p.raw(`</div></section>`)
}

func writeNewsletter(p *page, s storefront.Snapshot, csrfToken string) {
	p.raw(`<form class="w-full sm:w-auto flex gap-2" method="post" action="/newsletter" hx-post="/newsletter"`)
	p.attr("id", NewsletterID)
	p.attr("hx-target", "#"+NewsletterID)
	p.attr("data-status", s.Status.String())
	p.raw(` hx-swap="outerHTML">`)
	p.csrf(csrfToken)
	p.raw(`<input type="email" name="email" class="flex-1 px-3 py-2 rounded-md text-gray-900"`)
	p.attr("value", s.Email)
	p.attr("placeholder", s.Bundle.EmailPlaceholder)
	p.raw(`/><button type="submit" class="bg-white text-emerald-700 font-semibold px-4 py-2 rounded-md">`)
	p.text(s.Bundle.Subscribe)
	p.raw(`</button>`)
	if s.Status == storefront.StatusSuccess {
		p.raw(`<span class="text-emerald-200">✓</span>`)
	}
	p.raw(`</form>`)
}

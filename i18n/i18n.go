// Package i18n holds the storefront's compiled-in translations. The set of
// locales is closed; every Locale value maps to a complete Bundle.
package i18n

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// Locale is a supported UI language.
type Locale string

const (
	English Locale = "en"
	Spanish Locale = "es"
)

// Default is the locale used when nothing better is known.
const Default = English

var locales = []Locale{English, Spanish}

// Locales returns the supported locales in selector order.
func Locales() []Locale {
	out := make([]Locale, len(locales))
	copy(out, locales)
	return out
}

// ParseLocale maps a locale code ("en", " ES ") onto a Locale.
func ParseLocale(code string) (Locale, bool) {
	switch Locale(strings.ToLower(strings.TrimSpace(code))) {
	case English:
		return English, true
	case Spanish:
		return Spanish, true
	}
	return "", false
}

func (l Locale) String() string { return string(l) }

// Label is the short selector label, e.g. "EN".
func (l Locale) Label() string { return strings.ToUpper(string(l)) }

var matcher = language.NewMatcher([]language.Tag{language.English, language.Spanish})

// Negotiate picks a locale from an Accept-Language header value.
func Negotiate(acceptLanguage string) Locale {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(locales) {
		return Default
	}
	return locales[idx]
}

// FormatDate renders a short numeric date the way each locale writes it.
func FormatDate(t time.Time, l Locale) string {
	switch l {
	case Spanish:
		return t.Format("2/1/2006")
	default:
		return t.Format("1/2/2006")
	}
}

package i18n

import (
	"reflect"
	"testing"
	"time"
)

func TestParseLocale(t *testing.T) {
	tests := []struct {
		in   string
		want Locale
		ok   bool
	}{
		{"en", English, true},
		{"es", Spanish, true},
		{" ES ", Spanish, true},
		{"fr", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseLocale(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLocale(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestForCoversEveryLocale(t *testing.T) {
	for _, l := range Locales() {
		b := For(l)
		if b.Locale != l {
			t.Errorf("For(%q).Locale = %q", l, b.Locale)
		}
		v := reflect.ValueOf(b)
		for i := 0; i < v.NumField(); i++ {
			f := v.Field(i)
			if f.Kind() == reflect.String && f.String() == "" {
				t.Errorf("For(%q).%s is empty", l, v.Type().Field(i).Name)
			}
		}
		for _, slug := range []string{"", "pickleball", "padel", "beach", "apparel"} {
			if b.Categories.Label(slug) == "" {
				t.Errorf("For(%q) has no label for category %q", l, slug)
			}
		}
	}
}

func TestForUnknownFallsBackToEnglish(t *testing.T) {
	if got := For(Locale("de")); got.Locale != English {
		t.Fatalf("For(de).Locale = %q, want en", got.Locale)
	}
}

func TestSpanishStrings(t *testing.T) {
	b := For(Spanish)
	if b.Search != "Buscar" || b.Categories.Beach != "Deportes de Playa" || b.Add != "Añadir al carrito" {
		t.Fatalf("unexpected spanish bundle: %+v", b)
	}
}

func TestNegotiate(t *testing.T) {
	tests := []struct {
		header string
		want   Locale
	}{
		{"", English},
		{"es-ES,es;q=0.9,en;q=0.8", Spanish},
		{"en-US,en;q=0.9", English},
		{"fr-FR,es;q=0.5", Spanish},
		{"de-DE", English},
		{";;garbage", English},
	}
	for _, tt := range tests {
		if got := Negotiate(tt.header); got != tt.want {
			t.Errorf("Negotiate(%q) = %q, want %q", tt.header, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)
	if got := FormatDate(d, English); got != "3/9/2025" {
		t.Errorf("FormatDate en = %q", got)
	}
	if got := FormatDate(d, Spanish); got != "9/3/2025" {
		t.Errorf("FormatDate es = %q", got)
	}
}

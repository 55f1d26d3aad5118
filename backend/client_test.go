package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProductsOmitsEmptyCategory(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.ListProducts(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, gotQuery)

	_, err = c.ListProducts(context.Background(), "padel")
	require.NoError(t, err)
	assert.Equal(t, "category=padel", gotQuery)
}

func TestListProductsDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"sku":"P1","title":"Padel Racket","brand":"Vento","tags":["padel","racket"],"price":59.99,"category":"padel"}]`))
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL, time.Second).ListProducts(context.Background(), "padel")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "P1", got[0].SKU)
	assert.Equal(t, "Padel Racket", got[0].Title)
	assert.True(t, decimal.RequireFromString("59.99").Equal(got[0].Price))
	assert.Equal(t, []string{"padel", "racket"}, got[0].Tags)
	assert.Equal(t, "USD", got[0].CurrencyCode())
}

func TestGetRejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"html body", http.StatusOK, "<html>oops</html>"},
		{"server error", http.StatusInternalServerError, `{"detail":"down"}`},
		{"not found", http.StatusNotFound, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			posts, err := NewClient(srv.URL, time.Second).ListBlog(context.Background())
			require.Error(t, err)
			assert.Nil(t, posts)
		})
	}
}

func TestStatusErrorCarriesCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).ListEvents(context.Background())
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadGateway, se.Code)
	assert.Equal(t, "/api/events", se.Path)
	assert.Equal(t, "boom", se.Body)
}

func TestUnreachableBackend(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second).ListProducts(context.Background(), "")
	require.Error(t, err)
}

func TestSubscribePostsJSON(t *testing.T) {
	var body map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/newsletter", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, time.Second).Subscribe(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"email": "ana@example.com"}, body)
}

func TestSubscribeStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, time.Second).Subscribe(context.Background(), "x@example.com")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnprocessableEntity, se.Code)
}

func TestSubscribeSendsAddressVerbatim(t *testing.T) {
	var body map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := NewClient(srv.URL, time.Second).Subscribe(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"email": "   "}, body)
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("", 0)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
	assert.Equal(t, "http://api.example.com", NewClient(" http://api.example.com/ ", 0).BaseURL())
}

func TestEventTimeAndKey(t *testing.T) {
	e := Event{Title: "Open Day", Date: "2025-06-01T10:00:00Z"}
	ts, ok := e.Time()
	require.True(t, ok)
	assert.Equal(t, 2025, ts.Year())
	assert.Equal(t, "Open Day2025-06-01T10:00:00Z", e.Key())

	_, ok = Event{Date: "next friday"}.Time()
	assert.False(t, ok)

	ts, ok = Event{Date: "2025-07-14"}.Time()
	require.True(t, ok)
	assert.Equal(t, time.July, ts.Month())
}

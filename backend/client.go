// Package backend talks to the remote storefront API: product catalog,
// blog teasers, events and newsletter signups.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-faster/errors"
)

const (
	// DefaultBaseURL is used when no base URL is configured.
	DefaultBaseURL = "http://localhost:8000"

	defaultTimeout = 10 * time.Second
	maxErrorBody   = 512
)

// StatusError reports a response with a status code of 400 or above.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("backend: %s %s: status %d", e.Method, e.Path, e.Code)
	}
	return fmt.Sprintf("backend: %s %s: status %d: %s", e.Method, e.Path, e.Code, e.Body)
}

// Client issues requests against the storefront API rooted at one base URL.
// The base URL is fixed at construction and shared read-only by all callers.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient constructs an API client. An empty baseURL selects
// DefaultBaseURL; a zero timeout selects a 10s default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// ListProducts fetches the catalog. An empty category fetches every product;
// otherwise the category is sent as the "category" query parameter.
func (c *Client) ListProducts(ctx context.Context, category string) ([]Product, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	var out []Product
	if err := c.getJSON(ctx, "/api/products", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListBlog fetches blog teasers.
func (c *Client) ListBlog(ctx context.Context) ([]BlogPost, error) {
	var out []BlogPost
	if err := c.getJSON(ctx, "/api/blog", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListEvents fetches upcoming events.
func (c *Client) ListEvents(ctx context.Context) ([]Event, error) {
	var out []Event
	if err := c.getJSON(ctx, "/api/events", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Subscribe posts an email address to the newsletter endpoint. The response
// body is ignored and the address is sent as given. A status of 400 or above yields a *StatusError; callers
// decide whether that counts as a failed signup.
func (c *Client) Subscribe(ctx context.Context, email string) error {
	payload, err := json.Marshal(struct {
		Email string `json:"email"`
	}{Email: email})
	if err != nil {
		return errors.Wrap(err, "encode newsletter body")
	}
	const path = "/api/newsletter"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errors.Wrap(err, "build newsletter request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "post newsletter")
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return &StatusError{Method: http.MethodPost, Path: path, Code: resp.StatusCode, Body: drainError(resp.Body)}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrapf(err, "build request %s", path)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "get %s", path)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return &StatusError{Method: http.MethodGet, Path: path, Code: resp.StatusCode, Body: drainError(resp.Body)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrapf(err, "decode %s", path)
	}
	return nil
}

func drainError(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	return strings.TrimSpace(string(b))
}

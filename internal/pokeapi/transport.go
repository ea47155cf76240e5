// Package pokeapi fetches PokeAPI resources through a persistent response
// cache.
package pokeapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "dexcache/1.0"

// ErrNotFound reports that the API has no resource under the requested key.
var ErrNotFound = errors.New("resource not found")

// StatusError is returned for non-2xx responses.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.URL, e.StatusCode)
}

// Is reports 404 and 410 responses as ErrNotFound.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound &&
		(e.StatusCode == http.StatusNotFound || e.StatusCode == http.StatusGone)
}

// Getter performs a GET and returns the response body.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Transport is the HTTP Getter used against the live API.
type Transport struct {
	client    *http.Client
	userAgent string
}

// NewTransport creates a Transport. Zero values select the defaults.
func NewTransport(timeout time.Duration, userAgent string) *Transport {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Transport{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

func (t *Transport) Get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", t.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode, Body: string(b)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

// Package store provides the persistent response cache and its SQLite and
// in-memory implementations.
package store

import (
	"context"
	"net/url"
	"strings"
)

// Cache is a key-value store mapping request keys to response bodies.
// A miss is reported as (nil, false, nil), never as an error.
type Cache interface {
	// Get returns the stored body for key.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put stores body under key, replacing any previous value.
	Put(ctx context.Context, key string, body []byte) error

	// Clear removes every entry.
	Clear(ctx context.Context) error
}

// ListParams holds parameters for listing cached entries.
type ListParams struct {
	Kind   string
	Prefix string
	Limit  int
}

// KindOf returns the resource kind of a request key: the path segment that
// follows "api/v2", or the first path segment when that marker is absent.
//
//	https://pokeapi.co/api/v2/pokemon-species/25 -> pokemon-species
func KindOf(key string) string {
	path := key
	if u, err := url.Parse(key); err == nil && u.Path != "" {
		path = u.Path
	}
	parts := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	for i := 0; i+2 < len(parts); i++ {
		if parts[i] == "api" && parts[i+1] == "v2" {
			return parts[i+2]
		}
	}
	if len(parts) > 1 {
		return parts[0]
	}
	return "unknown"
}

package model

import (
	"encoding/json"
	"time"
)

// CacheEntry is one persisted API response.
type CacheEntry struct {
	ID        string          `json:"id"`
	Key       string          `json:"key"`
	Kind      string          `json:"kind"`
	Size      int             `json:"size"`
	Hits      int             `json:"hits"`
	FetchedAt time.Time       `json:"fetched_at"`
	Body      json.RawMessage `json:"body,omitempty"`
}

package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/rcliao/dexcache/internal/store"
)

// Outcome classifies a probe.
type Outcome int

const (
	// Found means the body was served from cache or fetched successfully.
	Found Outcome = iota
	// NotFound means the API answered that the resource does not exist.
	NotFound
	// Transient covers transport failures, other statuses and malformed bodies.
	Transient
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case NotFound:
		return "not-found"
	default:
		return "transient"
	}
}

// Result is the three-valued answer of Probe. Body is set only for Found.
type Result struct {
	Outcome Outcome
	Body    json.RawMessage
	Err     error
}

// Options configures a Client.
type Options struct {
	BaseURL string
	// Dedup collapses concurrent misses on the same key into one request.
	Dedup  bool
	Logger *log.Logger
}

// Counters reports how requests were served.
type Counters struct {
	CacheHits    int64 `json:"cache_hits"`
	NetworkCalls int64 `json:"network_calls"`
	Failures     int64 `json:"failures"`
}

// Client is the fetch-with-cache layer. It consults the persistent cache
// before the network and writes successful bodies back under the same key.
type Client struct {
	base   string
	cache  store.Cache
	getter Getter
	dedup  bool
	group  singleflight.Group
	log    *log.Logger

	cacheHits    atomic.Int64
	networkCalls atomic.Int64
	failures     atomic.Int64
}

// New creates a Client over cache and getter.
func New(cache store.Cache, getter Getter, opts Options) *Client {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	base := opts.BaseURL
	if base == "" {
		base = "https://pokeapi.co/api/v2"
	}
	return &Client{
		base:   strings.TrimRight(base, "/"),
		cache:  cache,
		getter: getter,
		dedup:  opts.Dedup,
		log:    logger,
	}
}

// URL builds the request key for a resource kind and name or id.
func (c *Client) URL(kind, name string) string {
	return c.base + "/" + kind + "/" + url.PathEscape(strings.ToLower(name))
}

// Probe resolves key to one of Found, NotFound or Transient.
func (c *Client) Probe(ctx context.Context, key string) Result {
	body, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.log.Printf("[CACHE] read %s: %v", key, err)
	}
	if ok {
		c.cacheHits.Add(1)
		return Result{Outcome: Found, Body: body}
	}

	var v interface{}
	if c.dedup {
		// The shared fetch must outlive any single caller; each caller
		// still stops waiting when its own ctx is done.
		ch := c.group.DoChan(key, func() (interface{}, error) {
			return c.fetch(context.WithoutCancel(ctx), key)
		})
		select {
		case res := <-ch:
			v, err = res.Val, res.Err
		case <-ctx.Done():
			err = ctx.Err()
		}
	} else {
		v, err = c.fetch(ctx, key)
	}
	if err != nil {
		c.failures.Add(1)
		if errors.Is(err, ErrNotFound) {
			return Result{Outcome: NotFound, Err: err}
		}
		return Result{Outcome: Transient, Err: err}
	}
	return Result{Outcome: Found, Body: v.(json.RawMessage)}
}

func (c *Client) fetch(ctx context.Context, key string) (json.RawMessage, error) {
	c.networkCalls.Add(1)
	c.log.Printf("[FETCH] GET %s", key)

	body, err := c.getter.Get(ctx, key)
	if err != nil {
		c.log.Printf("[FETCH] %s failed: %v", key, err)
		return nil, err
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("decode %s: invalid JSON body", key)
	}

	if err := c.cache.Put(ctx, key, body); err != nil {
		// A failed write is logged, not returned.
		c.log.Printf("[CACHE] write %s: %v", key, err)
	}
	return json.RawMessage(body), nil
}

// FetchOrNull returns the body for key, or nil on any failure. It never
// returns an error.
func (c *Client) FetchOrNull(ctx context.Context, key string) json.RawMessage {
	r := c.Probe(ctx, key)
	if r.Outcome != Found {
		return nil
	}
	return r.Body
}

// Get decodes the body for key into out. It reports false when the resource
// is absent or the body does not decode.
func (c *Client) Get(ctx context.Context, key string, out interface{}) bool {
	body := c.FetchOrNull(ctx, key)
	if body == nil {
		return false
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.log.Printf("[FETCH] decode %s: %v", key, err)
		return false
	}
	return true
}

// Clear empties the persistent cache.
func (c *Client) Clear(ctx context.Context) error {
	return c.cache.Clear(ctx)
}

// Counters returns request counters since the client was created.
func (c *Client) Counters() Counters {
	return Counters{
		CacheHits:    c.cacheHits.Load(),
		NetworkCalls: c.networkCalls.Load(),
		Failures:     c.failures.Load(),
	}
}

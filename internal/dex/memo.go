package dex

import "sync"

// memo is a process-lifetime map guarded for concurrent use. Entries are
// never mutated after insertion; reset drops them all.
type memo[V any] struct {
	mu sync.RWMutex
	m  map[string]V
}

func newMemo[V any]() *memo[V] {
	return &memo[V]{m: make(map[string]V)}
}

func (c *memo[V]) get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[key]
	return v, ok
}

func (c *memo[V]) put(key string, v V) {
	c.mu.Lock()
	c.m[key] = v
	c.mu.Unlock()
}

func (c *memo[V]) reset() {
	c.mu.Lock()
	c.m = make(map[string]V)
	c.mu.Unlock()
}

func (c *memo[V]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

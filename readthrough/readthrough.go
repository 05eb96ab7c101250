package readthrough

import (
	"errors"
	"sync"
)

// New returns an empty cache.
func New[V any]() *Cache[V] {
	return &Cache[V]{entries: map[string]V{}}
}

// A Cache is an in-memory read-through cache keyed by string. Entries never
// expire; they live for the process lifetime. Storing a zero value is
// meaningful: a lookup that resolved to "not found" is cached too, and Get
// distinguishes it from a key that was never queried via ErrMiss.
//
// Concurrent writes of the same key are last-writer-wins, which is fine
// here: every writer for a key computed the same answer.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[string]V
}

var ErrMiss = errors.New("cache miss")

func (c *Cache[V]) Get(key string) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[key]
	if !ok {
		return v, ErrMiss
	}
	return v, nil
}

func (c *Cache[V]) Set(key string, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = v
}

func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

package lrucache

import "errors"

// ErrBadCapacity is returned by New and Resize for capacities below 1.
var ErrBadCapacity = errors.New("lrucache: capacity must be positive")

// EvictCallback receives each (key, value) pair as it leaves the cache,
// whether through capacity eviction, Remove, Resize or Purge.
type EvictCallback[K comparable, V any] func(key K, value V)

// Option configures a Cache at construction time.
type Option[K comparable, V any] func(*Cache[K, V])

// WithOnEvict registers fn as the eviction callback. A nil fn is ignored.
func WithOnEvict[K comparable, V any](fn EvictCallback[K, V]) Option[K, V] {
	return func(c *Cache[K, V]) {
		if fn != nil {
			c.onEvict = fn
		}
	}
}

package lrucache

import "fmt"

// Cache is a fixed-capacity LRU cache. The zero value is not usable — build
// one with New. Not safe for concurrent use; see the package documentation.
type Cache[K comparable, V any] struct {
	capacity int
	items    map[K]*entry[K, V]
	order    recencyList[K, V]
	onEvict  EvictCallback[K, V]
}

// New returns an empty Cache holding at most capacity entries.
// Returns ErrBadCapacity when capacity < 1.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}
	c := &Cache[K, V]{
		capacity: capacity,
		items:    make(map[K]*entry[K, V], capacity),
	}
	c.order.init()
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get returns the value stored under key and promotes it to most-recent.
// A miss returns the zero value and false — never an error. O(1).
func (c *Cache[K, V]) Get(key K) (value V, ok bool) {
	e, ok := c.items[key]
	if !ok {
		return value, false
	}
	c.order.moveToFront(e)
	return e.value, true
}

// Put stores value under key and promotes it to most-recent, updating in
// place when the key already exists. When a new key would exceed capacity,
// the least-recently-used entry is evicted first; evicted reports whether
// that happened. Put never fails. O(1).
func (c *Cache[K, V]) Put(key K, value V) (evicted bool) {
	if e, ok := c.items[key]; ok {
		e.value = value
		c.order.moveToFront(e)
		return false
	}
	if len(c.items) >= c.capacity {
		c.removeEntry(c.order.back())
		evicted = true
	}
	c.items[key] = c.order.pushFront(key, value)
	return evicted
}

// Peek returns the value stored under key without touching its recency. O(1).
func (c *Cache[K, V]) Peek(key K) (value V, ok bool) {
	e, ok := c.items[key]
	if !ok {
		return value, false
	}
	return e.value, true
}

// Contains reports whether key is cached, without touching its recency. O(1).
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.items[key]
	return ok
}

// Remove drops key from the cache, reporting whether it was present.
// Fires the eviction callback. O(1).
func (c *Cache[K, V]) Remove(key K) bool {
	e, ok := c.items[key]
	if !ok {
		return false
	}
	c.removeEntry(e)
	return true
}

// RemoveOldest evicts the least-recently-used entry and returns it.
// Returns zero values and false on an empty cache. O(1).
func (c *Cache[K, V]) RemoveOldest() (key K, value V, ok bool) {
	e := c.order.back()
	if e == nil {
		return key, value, false
	}
	key, value = e.key, e.value
	c.removeEntry(e)
	return key, value, true
}

// Keys returns all cached keys ordered least- to most-recently-used. O(n).
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.items))
	for e := c.order.back(); e != nil && e != &c.order.root; e = e.prev {
		keys = append(keys, e.key)
	}
	return keys
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return len(c.items)
}

// Cap returns the capacity fixed at construction (or set by Resize).
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Purge removes every entry, firing the eviction callback for each,
// least-recent first. O(n).
func (c *Cache[K, V]) Purge() {
	for e := c.order.back(); e != nil; e = c.order.back() {
		c.removeEntry(e)
	}
}

// Resize changes the capacity. Shrinking below the current length evicts
// least-recently-used entries until the new capacity fits; evicted reports
// how many were dropped. Returns ErrBadCapacity when capacity < 1.
func (c *Cache[K, V]) Resize(capacity int) (evicted int, err error) {
	if capacity < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}
	for len(c.items) > capacity {
		c.removeEntry(c.order.back())
		evicted++
	}
	c.capacity = capacity
	return evicted, nil
}

// removeEntry unlinks e from both structures and fires the callback.
func (c *Cache[K, V]) removeEntry(e *entry[K, V]) {
	c.order.remove(e)
	delete(c.items, e.key)
	if c.onEvict != nil {
		c.onEvict(e.key, e.value)
	}
}

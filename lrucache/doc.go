// Package lrucache implements a generic fixed-capacity cache with
// least-recently-used eviction and O(1) Get/Put.
//
// 🚀 How it works:
//
//	A hash map indexes entries of an intrusive doubly-linked recency list.
//	The most recently used entry sits at the front, the eviction candidate
//	at the back. Get and Put promote their entry to the front; inserting a
//	new key into a full cache silently evicts the back entry first. The
//	entry count never exceeds the capacity fixed at construction.
//
// ✨ Key features:
//   - O(1) Get, Put, Peek, Contains, Remove, RemoveOldest
//   - misses return (zero value, false) — never an error
//   - optional eviction hook via WithOnEvict
//   - Resize, Purge and ordered Keys for cache management
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/algokit/lrucache"
//
//	cache, err := lrucache.New[int, string](128)
//	if err != nil {
//	  // handle ErrBadCapacity
//	}
//	cache.Put(1, "a")
//	if v, ok := cache.Get(1); ok {
//	  fmt.Println(v) // "a", and key 1 is now most-recent
//	}
//
// Concurrency:
//
//	A Cache is NOT safe for concurrent use. Inside a multithreaded host,
//	guard each instance with its own mutex — synchronization policy belongs
//	to the caller, not the structure.
package lrucache

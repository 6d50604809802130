package lrucache_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/lrucache"
)

// ExampleCache walks through the classic capacity-2 eviction scenario.
func ExampleCache() {
	cache, _ := lrucache.New[int, string](2)

	cache.Put(1, "a")
	cache.Put(2, "b")

	v, _ := cache.Get(1) // hit — and 1 becomes most-recent
	fmt.Println("get(1):", v)

	cache.Put(3, "c") // full: evicts 2, the least-recent

	if _, ok := cache.Get(2); !ok {
		fmt.Println("get(2): miss")
	}
	v, _ = cache.Get(3)
	fmt.Println("get(3):", v)
	// Output:
	// get(1): a
	// get(2): miss
	// get(3): c
}

// ExampleWithOnEvict observes evictions through the callback.
func ExampleWithOnEvict() {
	cache, _ := lrucache.New(2, lrucache.WithOnEvict(func(k string, v int) {
		fmt.Printf("evicted %s=%d\n", k, v)
	}))

	cache.Put("one", 1)
	cache.Put("two", 2)
	cache.Put("three", 3)
	// Output:
	// evicted one=1
}

// ExampleCache_Keys shows recency ordering, least-recent first.
func ExampleCache_Keys() {
	cache, _ := lrucache.New[string, int](3)
	cache.Put("a", 1)
	cache.Put("b", 2)
	cache.Put("c", 3)
	cache.Get("a") // promote
	fmt.Println(cache.Keys())
	// Output:
	// [b c a]
}

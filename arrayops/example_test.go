package arrayops_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/arrayops"
)

// ExampleRotate demonstrates right and left rotation of the same slice.
func ExampleRotate() {
	s := []int{1, 2, 3, 4, 5}
	arrayops.Rotate(s, 2) // right by two
	fmt.Println(s)
	arrayops.Rotate(s, -2) // and back
	fmt.Println(s)
	// Output:
	// [4 5 1 2 3]
	// [1 2 3 4 5]
}

// ExampleDedup shows order-preserving deduplication.
func ExampleDedup() {
	fmt.Println(arrayops.Dedup([]string{"go", "rust", "go", "zig", "rust"}))
	// Output:
	// [go rust zig]
}

// ExampleMergeSorted merges two ascending runs into one.
func ExampleMergeSorted() {
	a := []int{1, 4, 9}
	b := []int{2, 4, 8, 16}
	fmt.Println(arrayops.MergeSorted(a, b))
	// Output:
	// [1 2 4 4 8 9 16]
}

// ExampleFindPeak locates a local maximum in logarithmic time.
func ExampleFindPeak() {
	terrain := []int{1, 3, 8, 12, 9, 5, 2}
	idx, err := arrayops.FindPeak(terrain)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("peak %d at index %d\n", terrain[idx], idx)
	// Output:
	// peak 12 at index 3
}

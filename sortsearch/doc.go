// Package sortsearch provides linear and binary search plus the five
// classic comparison sorts — bubble, selection, insertion, quick and
// merge — generic over any ordered element type.
//
// ✨ Key features:
//   - search misses return the NotFound sentinel (-1), never an error
//   - all sorts operate in place on the given slice
//   - stability and worst-case behavior are part of each contract:
//
//     algorithm   stable   time            memory
//     ---------   ------   ----            ------
//     bubble      yes      O(n²), O(n) best (early exit)   O(1)
//     selection   no       O(n²)           O(1)
//     insertion   yes      O(n²), O(n) best                O(1)
//     quick       no       O(n·log n) avg, O(n²) worst     O(log n) stack
//     merge       yes      O(n·log n) guaranteed           O(n) buffer
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/algokit/sortsearch"
//
//	s := []int{5, 2, 4, 1, 3}
//	sortsearch.MergeSort(s)
//	if i := sortsearch.BinarySearch(s, 4); i != sortsearch.NotFound {
//	  // s[i] == 4
//	}
//
// Preconditions:
//
//	BinarySearch requires its input sorted ascending. It does not verify
//	this; on unsorted input the result is unspecified (typically NotFound).
//	Use IsSorted when in doubt.
//
// QuickSort pivots on the last element of each partition, so already-sorted
// and reverse-sorted inputs hit the documented O(n²) worst case. This is an
// accepted failure mode, not a bug — prefer MergeSort for adversarial data.
package sortsearch

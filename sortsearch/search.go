package sortsearch

import "cmp"

// NotFound is the sentinel index returned by LinearSearch and BinarySearch
// when the target is absent.
const NotFound = -1

// LinearSearch scans s once and returns the index of the first element
// equal to target, or NotFound.
// Complexity: O(n) time, O(1) memory.
func LinearSearch[T comparable](s []T, target T) int {
	for i, v := range s {
		if v == target {
			return i
		}
	}
	return NotFound
}

// BinarySearch returns an index i with s[i] == target, or NotFound.
//
// Precondition: s must be sorted ascending. This is not validated; on
// unsorted input the result is unspecified. When target occurs more than
// once, any of its indices may be returned.
// Complexity: O(log n) time, O(1) memory.
func BinarySearch[T cmp.Ordered](s []T, target T) int {
	lo, hi := 0, len(s)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case s[mid] == target:
			return mid
		case s[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return NotFound
}

// IsSorted reports whether s is non-decreasing.
// Complexity: O(n) time.
func IsSorted[T cmp.Ordered](s []T) bool {
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1] {
			return false
		}
	}
	return true
}

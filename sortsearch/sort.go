package sortsearch

import "cmp"

// BubbleSort sorts s ascending, in place, by repeatedly swapping adjacent
// out-of-order pairs. Stable. A pass without swaps ends the sort early,
// giving O(n) on already-sorted input.
// Complexity: O(n²) time worst case, O(1) memory.
func BubbleSort[T cmp.Ordered](s []T) {
	BubbleSortFunc(s, cmp.Less)
}

// BubbleSortFunc is BubbleSort with a custom strict-ordering function.
// Stability holds as long as less is a strict weak ordering.
func BubbleSortFunc[T any](s []T, less func(a, b T) bool) {
	for end := len(s) - 1; end > 0; end-- {
		swapped := false
		for i := 0; i < end; i++ {
			if less(s[i+1], s[i]) {
				s[i], s[i+1] = s[i+1], s[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// SelectionSort sorts s ascending, in place, by repeatedly selecting the
// minimum of the unsorted tail. Not stable: the long-range swap can reorder
// equal elements.
// Complexity: O(n²) time always, O(1) memory, at most n−1 swaps.
func SelectionSort[T cmp.Ordered](s []T) {
	SelectionSortFunc(s, cmp.Less)
}

// SelectionSortFunc is SelectionSort with a custom strict-ordering function.
func SelectionSortFunc[T any](s []T, less func(a, b T) bool) {
	for i := 0; i < len(s)-1; i++ {
		minIdx := i
		for j := i + 1; j < len(s); j++ {
			if less(s[j], s[minIdx]) {
				minIdx = j
			}
		}
		if minIdx != i {
			s[i], s[minIdx] = s[minIdx], s[i]
		}
	}
}

// InsertionSort sorts s ascending, in place, by growing a sorted prefix one
// element at a time. Stable; O(n) on already-sorted input.
// Complexity: O(n²) time worst case, O(1) memory.
func InsertionSort[T cmp.Ordered](s []T) {
	InsertionSortFunc(s, cmp.Less)
}

// InsertionSortFunc is InsertionSort with a custom strict-ordering function.
func InsertionSortFunc[T any](s []T, less func(a, b T) bool) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && less(key, s[j]) {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}

// QuickSort sorts s ascending, in place, using Lomuto partitioning with the
// last element of each partition as pivot. Not stable. Worst case O(n²) on
// already-sorted or adversarial input — an accepted failure mode; see the
// package documentation.
// Complexity: O(n·log n) average time, O(log n) average stack depth.
func QuickSort[T cmp.Ordered](s []T) {
	QuickSortFunc(s, cmp.Less)
}

// QuickSortFunc is QuickSort with a custom strict-ordering function.
func QuickSortFunc[T any](s []T, less func(a, b T) bool) {
	quickSort(s, 0, len(s)-1, less)
}

// quickSort recursively sorts s[low..high] inclusive.
func quickSort[T any](s []T, low, high int, less func(a, b T) bool) {
	if low >= high {
		return
	}
	p := partition(s, low, high, less)
	quickSort(s, low, p-1, less)
	quickSort(s, p+1, high, less)
}

// partition applies the Lomuto scheme on s[low..high] with s[high] as
// pivot, returning the pivot's final index.
func partition[T any](s []T, low, high int, less func(a, b T) bool) int {
	pivot := s[high]
	i := low
	for j := low; j < high; j++ {
		if less(s[j], pivot) {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[high] = s[high], s[i]
	return i
}

// MergeSort sorts s ascending. Stable, guaranteed O(n·log n) time. A single
// auxiliary buffer of len(s) is allocated up front and reused by every
// merge down the recursion.
func MergeSort[T cmp.Ordered](s []T) {
	MergeSortFunc(s, cmp.Less)
}

// MergeSortFunc is MergeSort with a custom strict-ordering function.
func MergeSortFunc[T any](s []T, less func(a, b T) bool) {
	if len(s) < 2 {
		return
	}
	buf := make([]T, len(s))
	mergeSort(s, buf, 0, len(s)-1, less)
}

// mergeSort recursively sorts s[low..high] inclusive using buf for merges.
func mergeSort[T any](s, buf []T, low, high int, less func(a, b T) bool) {
	if low >= high {
		return
	}
	mid := low + (high-low)/2
	mergeSort(s, buf, low, mid, less)
	mergeSort(s, buf, mid+1, high, less)
	merge(s, buf, low, mid, high, less)
}

// merge combines the sorted runs s[low..mid] and s[mid+1..high].
// Ties take from the left run, which is what makes the sort stable.
func merge[T any](s, buf []T, low, mid, high int, less func(a, b T) bool) {
	copy(buf[low:high+1], s[low:high+1])
	i, j := low, mid+1
	for k := low; k <= high; k++ {
		switch {
		case i > mid:
			s[k] = buf[j]
			j++
		case j > high:
			s[k] = buf[i]
			i++
		case less(buf[j], buf[i]):
			s[k] = buf[j]
			j++
		default:
			s[k] = buf[i]
			i++
		}
	}
}

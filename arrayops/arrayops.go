package arrayops

import "cmp"

// Max returns the largest element of s.
// Returns ErrEmptyInput when s is empty.
// Complexity: O(n) time, O(1) memory.
func Max[T cmp.Ordered](s []T) (T, error) {
	var zero T
	if len(s) == 0 {
		return zero, ErrEmptyInput
	}
	best := s[0]
	for _, v := range s[1:] {
		if v > best {
			best = v
		}
	}
	return best, nil
}

// Min returns the smallest element of s.
// Returns ErrEmptyInput when s is empty.
// Complexity: O(n) time, O(1) memory.
func Min[T cmp.Ordered](s []T) (T, error) {
	var zero T
	if len(s) == 0 {
		return zero, ErrEmptyInput
	}
	best := s[0]
	for _, v := range s[1:] {
		if v < best {
			best = v
		}
	}
	return best, nil
}

// MinMax returns the smallest and largest element of s in a single pass,
// comparing elements in pairs (~3n/2 comparisons instead of 2n).
// Returns ErrEmptyInput when s is empty.
func MinMax[T cmp.Ordered](s []T) (lo, hi T, err error) {
	if len(s) == 0 {
		return lo, hi, ErrEmptyInput
	}
	lo, hi = s[0], s[0]
	i := 1
	// odd length: s[0] already consumed; even length: start pairing at s[1].
	if len(s)%2 == 0 {
		if s[1] < lo {
			lo = s[1]
		} else if s[1] > hi {
			hi = s[1]
		}
		i = 2
	}
	for ; i+1 < len(s); i += 2 {
		a, b := s[i], s[i+1]
		if a > b {
			a, b = b, a
		}
		if a < lo {
			lo = a
		}
		if b > hi {
			hi = b
		}
	}
	return lo, hi, nil
}

// Reverse reverses s in place.
// Complexity: O(n) time, O(1) memory.
func Reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// Dedup returns a new slice with duplicate elements removed, keeping the
// first occurrence of each value in its original relative order.
// Complexity: O(n) time, O(n) memory.
func Dedup[T comparable](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	seen := make(map[T]struct{}, len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Rotate rotates s in place by k positions to the right; a negative k
// rotates to the left. Any k is accepted — it is normalized modulo len(s).
// Uses the triple-reversal trick: O(n) time, O(1) memory.
func Rotate[T any](s []T, k int) {
	n := len(s)
	if n == 0 {
		return
	}
	k %= n
	if k < 0 {
		k += n
	}
	if k == 0 {
		return
	}
	Reverse(s)
	Reverse(s[:k])
	Reverse(s[k:])
}

// MergeSorted merges two ascending slices into a new ascending slice.
// The merge is stable: on equal elements the one from a is taken first.
// Inputs that are not sorted ascending yield an unspecified order —
// the precondition is the caller's responsibility.
// Complexity: O(len(a)+len(b)) time and memory.
func MergeSorted[T cmp.Ordered](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if b[j] < a[i] {
			out = append(out, b[j])
			j++
		} else {
			out = append(out, a[i])
			i++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// FindPeak returns the index of a peak element: one that is not smaller
// than its immediate neighbors. The first and last elements have only one
// neighbor each. At least one peak always exists in a non-empty slice;
// when several exist, any one of them may be returned.
// Returns ErrEmptyInput when s is empty.
// Complexity: O(log n) time, O(1) memory.
func FindPeak[T cmp.Ordered](s []T) (int, error) {
	if len(s) == 0 {
		return 0, ErrEmptyInput
	}
	lo, hi := 0, len(s)-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		// ascending slope: a peak lies strictly to the right
		if s[mid] < s[mid+1] {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo, nil
}

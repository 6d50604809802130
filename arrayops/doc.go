// Package arrayops provides the classic slice utilities: max/min scans,
// in-place reversal and rotation, order-preserving deduplication, linear
// merging of sorted slices, and logarithmic peak finding.
//
// ✨ Key features:
//   - generic over element type (cmp.Ordered / comparable / any, as each
//     operation actually requires)
//   - in-place operations mutate their argument and allocate nothing
//   - expected "empty input" failures surface as the ErrEmptyInput sentinel
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/algokit/arrayops"
//
//	peak, err := arrayops.FindPeak([]int{1, 3, 5, 4, 2})
//	if err != nil {
//	  // handle ErrEmptyInput
//	}
//
// Performance:
//
//   - Max / Min / MinMax / Reverse / Dedup / Rotate / MergeSorted: O(n) time
//   - FindPeak: O(log n) time
//   - Reverse / Rotate: O(1) extra memory
//
// See examples in example_test.go.
package arrayops

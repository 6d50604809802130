package sortsearch_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/algokit/sortsearch"
)

// benchSlice returns a fresh pseudo-random slice per iteration.
func benchSlice(n int, seed int64) []int {
	rnd := rand.New(rand.NewSource(seed))
	s := make([]int, n)
	for i := range s {
		s[i] = rnd.Intn(n)
	}
	return s
}

// BenchmarkSorts_Random compares all five sorts on the same random input.
func BenchmarkSorts_Random(b *testing.B) {
	const n = 2_000
	for name, sortFn := range sortFns {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				s := benchSlice(n, 42)
				b.StartTimer()
				sortFn(s)
			}
		})
	}
}

// BenchmarkQuickSort_WorstCase demonstrates the documented quadratic
// degradation on already-sorted input (compare with BenchmarkSorts_Random).
func BenchmarkQuickSort_WorstCase(b *testing.B) {
	const n = 2_000
	sorted := make([]int, n)
	for i := range sorted {
		sorted[i] = i
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		s := append([]int(nil), sorted...)
		b.StartTimer()
		sortsearch.QuickSort(s)
	}
}

// BenchmarkBinarySearch measures lookups on a large sorted slice.
func BenchmarkBinarySearch(b *testing.B) {
	const n = 1 << 20
	s := make([]int, n)
	for i := range s {
		s[i] = i * 2
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sortsearch.BinarySearch(s, (i%n)*2)
	}
}

// BenchmarkLinearSearch measures the linear scan miss path on the same size.
func BenchmarkLinearSearch(b *testing.B) {
	const n = 1 << 16
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sortsearch.LinearSearch(s, -1)
	}
}

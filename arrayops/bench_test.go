package arrayops_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/algokit/arrayops"
)

// randomInts builds a deterministic pseudo-random slice of size n.
func randomInts(n int) []int {
	rnd := rand.New(rand.NewSource(42))
	s := make([]int, n)
	for i := range s {
		s[i] = rnd.Intn(n)
	}
	return s
}

// BenchmarkMax measures a plain linear scan.
func BenchmarkMax(b *testing.B) {
	s := randomInts(100_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = arrayops.Max(s)
	}
}

// BenchmarkMinMax measures the paired scan against two separate scans.
func BenchmarkMinMax(b *testing.B) {
	s := randomInts(100_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = arrayops.MinMax(s)
	}
}

// BenchmarkDedup measures map-based deduplication on a duplicate-heavy slice.
func BenchmarkDedup(b *testing.B) {
	rnd := rand.New(rand.NewSource(7))
	s := make([]int, 10_000)
	for i := range s {
		s[i] = rnd.Intn(100) // ~1% distinct values
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = arrayops.Dedup(s)
	}
}

// BenchmarkRotate measures the triple-reversal rotation.
func BenchmarkRotate(b *testing.B) {
	s := randomInts(100_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arrayops.Rotate(s, 12345)
	}
}

// BenchmarkFindPeak measures binary peak finding on a single-peak slice.
func BenchmarkFindPeak(b *testing.B) {
	const n = 1 << 20
	s := make([]int, n)
	for i := 0; i < n/2; i++ {
		s[i] = i
	}
	for i := n / 2; i < n; i++ {
		s[i] = n - i
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = arrayops.FindPeak(s)
	}
}

package nw_test

import (
	"math/rand"
	"testing"

	"github.com/li-maxime/Needleman-Wunsch-algorithm/nw"
)

// benchmarkDistance runs one strategy over random DNA sequences of lengths
// n and m. It resets the timer after setup and fails on unexpected errors.
func benchmarkDistance(b *testing.B, n, m int, s nw.Strategy) {
	rng := rand.New(rand.NewSource(1))
	seqA := []byte(randSeq(rng, n, "ACGTN"))
	seqB := []byte(randSeq(rng, m, "ACGTN"))

	opts := nw.DefaultOptions()
	opts.Strategy = s

	b.ResetTimer() // ignore sequence generation
	for i := 0; i < b.N; i++ {
		if _, err := nw.Distance(seqA, seqB, &opts); err != nil {
			b.Fatalf("Distance failed: %v", err)
		}
	}
}

// BenchmarkDistance_MemoizedSmall benchmarks the full-table strategy on 100×100 inputs.
func BenchmarkDistance_MemoizedSmall(b *testing.B) {
	benchmarkDistance(b, 100, 100, nw.Memoized)
}

// BenchmarkDistance_MemoizedMedium benchmarks the full-table strategy on 1000×1000 inputs.
func BenchmarkDistance_MemoizedMedium(b *testing.B) {
	benchmarkDistance(b, 1000, 1000, nw.Memoized)
}

// BenchmarkDistance_IterativeSmall benchmarks the linear-space strategy on 100×100 inputs.
func BenchmarkDistance_IterativeSmall(b *testing.B) {
	benchmarkDistance(b, 100, 100, nw.Iterative)
}

// BenchmarkDistance_IterativeMedium benchmarks the linear-space strategy on 1000×1000 inputs.
func BenchmarkDistance_IterativeMedium(b *testing.B) {
	benchmarkDistance(b, 1000, 1000, nw.Iterative)
}

// BenchmarkDistance_IterativeLarge benchmarks the linear-space strategy on 10000×10000 inputs.
func BenchmarkDistance_IterativeLarge(b *testing.B) {
	benchmarkDistance(b, 10000, 10000, nw.Iterative)
}

// BenchmarkDistance_CacheAwareLarge benchmarks the blocked strategy on 10000×10000 inputs.
func BenchmarkDistance_CacheAwareLarge(b *testing.B) {
	benchmarkDistance(b, 10000, 10000, nw.CacheAware)
}

// BenchmarkDistance_CacheObliviousLarge benchmarks the recursive-halving strategy on 10000×10000 inputs.
func BenchmarkDistance_CacheObliviousLarge(b *testing.B) {
	benchmarkDistance(b, 10000, 10000, nw.CacheOblivious)
}

// Package nw computes the Needleman-Wunsch global alignment score (minimum
// edit distance) between two symbol sequences, under an asymmetric cost
// model with a wildcard symbol.
//
// 🚀 What is nw?
//
//	One mathematical value — φ(0,0), the minimum total cost to transform one
//	sequence into the other — computed by four interchangeable evaluation
//	strategies that trade time, memory and cache behavior against each
//	other:
//	  • Memoized       — top-down, full memo table
//	  • Iterative      — bottom-up, one row + one stale scalar
//	  • CacheAware     — bottom-up, blocked to an assumed cache capacity
//	  • CacheOblivious — bottom-up, recursive halving of the Y-axis
//
// ✨ Key features:
//   - all four strategies return identical results on identical inputs
//   - asymmetric costs: substitution, wildcard substitution, insertion
//   - invalid (non-alphabet) symbols are skipped at zero cost, with
//     optional diagnostics via base.Alphabet.OnInvalid
//   - no shared state across calls: every call allocates and releases its
//     own working tables
//
// ⚙️ Usage:
//
//	import "github.com/li-maxime/Needleman-Wunsch-algorithm/nw"
//
//	opts := nw.DefaultOptions()
//	opts.Strategy = nw.CacheOblivious
//	opts.Threshold = 512
//
//	dist, err := nw.Distance([]byte("ACGT"), []byte("ACG"), &opts)
//
// Performance (M = longer length, N = shorter length):
//
//   - Memoized:       O(M·N) time, O(M·N) memory
//   - Iterative:      O(M·N) time, O(N) memory
//   - CacheAware:     O(M·N) time, O(M + block) memory, cache-resident blocks
//   - CacheOblivious: O(M·N) time, O(M) memory, O(log(N/threshold)) recursion
//
// All strategies run to completion synchronously; none of them retries,
// suspends, or calls another.
package nw

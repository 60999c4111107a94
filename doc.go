// Package needlemanwunsch is a playground for computing the minimum-cost
// edit distance (Needleman-Wunsch global alignment score) between genetic
// sequences — one value, four evaluation strategies.
//
// 🚀 What is this?
//
//	A small, focused library exploring how one O(M·N) dynamic program can
//	be evaluated with very different time/memory/cache trade-offs:
//		• Memoized: top-down with a full memo table — the textbook baseline
//		• Iterative: bottom-up with one row and one stale scalar
//		• CacheAware: bottom-up in blocks sized to an assumed cache capacity
//		• CacheOblivious: bottom-up by recursive halving of the Y-axis
//
// ✨ Why four strategies?
//
//   - They are interchangeable: identical inputs yield bit-identical results
//   - They are honest benchmarks of each other: same value, different cost
//   - Pure Go — no cgo, no hidden state, no shared memory across calls
//
// Under the hood, everything is organized in three subpackages and a CLI:
//
//	base/       — immutable symbol classification: canonical bases, the N
//	              wildcard, and the invalid-symbol notifier
//	nw/         — THE CORE: the four solvers behind one Distance call
//	fasta/      — FASTA sequence loading for the CLI and tests
//	cmd/nwdist/ — command-line driver: load two files, race the strategies
//
// Quick taste:
//
//	dist, err := nw.Distance([]byte("GATTACA"), []byte("GCATGCN"), nil)
//	// dist == 4 with the classic costs (substitution 1, insertion 2)
//
// Dive into nw/doc.go for the recurrence, the invariants of the in-place
// row update, and the border-column discipline shared by the blocked
// strategies.
package needlemanwunsch

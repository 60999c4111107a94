package nw

// Block-width derivation for the cache-aware strategy: the inner step keeps
// a handful of arrays live (the block row, its stale neighbors, the border
// column, both sequences), so the assumed capacity is split between that
// many resident spans of table cells. The divisor is a tuning choice, not a
// correctness requirement: any positive block width computes the same
// value.
const (
	liveArrays = 5
	cellSize   = 8 // bytes per int64 table cell
)

// blockWidth converts an assumed cache capacity in bytes into a block width
// in table cells, clamped to at least one column.
func blockWidth(cacheSize int) int {
	nb := cacheSize / (liveArrays * cellSize)
	if nb < 1 {
		nb = 1
	}

	return nb
}

// cacheAware evaluates the distance bottom-up in Y-blocks of nbCase
// columns, so that each block's working row stays resident in a cache of
// the assumed capacity.
//
// The border column col[0..M] persists across blocks: after a block is
// done, col[i] holds the value at the block's right edge for every row i,
// which seeds tab[0] when the next block sweeps that row. Blocks are
// processed left-to-right along y until the whole width N is consumed; the
// final distance is col[M].
func (p problem) cacheAware(nbCase int) int64 {
	col := p.borderCol()
	tab := make([]int64, nbCase+1)

	for lo := 0; lo < p.n; lo += nbCase {
		width := nbCase
		if rest := p.n - lo; rest < width {
			width = rest
		}
		p.sweepBlock(col, tab, lo, width)
	}

	return col[p.m]
}

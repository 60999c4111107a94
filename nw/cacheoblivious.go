package nw

// cacheOblivious evaluates the distance bottom-up by recursively bisecting
// the Y-range [0, N): a sub-range wider than the threshold splits at its
// midpoint and recurses on the two halves in left-to-right order — the
// border column state produced by the first half feeds the second — and a
// sub-range at or below the threshold is processed as one block, exactly as
// in the cache-aware strategy.
//
// No cache capacity is named anywhere: the halving makes sub-ranges fit
// every level of the memory hierarchy at some recursion depth, which is the
// cache-oblivious property. Recursion depth is O(log(N/threshold)); the
// leaf row buffer is allocated once and reused by every leaf.
func (p problem) cacheOblivious(threshold int) int64 {
	col := p.borderCol()
	tab := make([]int64, threshold+1)

	var split func(lo, hi int)
	split = func(lo, hi int) {
		width := hi - lo
		if width > threshold {
			mid := lo + width/2
			split(lo, mid)
			split(mid, hi)

			return
		}
		p.sweepBlock(col, tab, lo, width)
	}
	split(0, p.n)

	return col[p.m]
}

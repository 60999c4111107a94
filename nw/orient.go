package nw

import "github.com/li-maxime/Needleman-Wunsch-algorithm/base"

// problem is one oriented distance computation: x is the not-shorter
// sequence (length m), y the not-longer one (length n), n ≤ m. Both
// sequences are borrowed read-only from the caller; every working table is
// allocated by the strategy that needs it and dropped when it returns.
type problem struct {
	x, y  []byte
	m, n  int
	ab    *base.Alphabet
	costs Costs
}

// orient canonicalizes the pair: the longer sequence becomes x, ties keep
// the first argument. It also performs the one-time diagnostics sweep,
// reporting every invalid symbol to the alphabet's notifier so that the
// solvers' inner loops stay notification-free.
func orient(a, b []byte, ab *base.Alphabet, costs Costs) problem {
	x, y := a, b
	if len(b) > len(a) {
		x, y = b, a
	}
	p := problem{x: x, y: y, m: len(x), n: len(y), ab: ab, costs: costs}
	p.reportInvalid()

	return p
}

// reportInvalid forwards each invalid symbol of both sequences to the
// notifier, once per occurrence. Diagnostics only; no cost, no skipping
// happens here.
func (p problem) reportInvalid() {
	for _, seq := range [2][]byte{p.x, p.y} {
		for _, c := range seq {
			if !p.ab.IsBase(c) {
				p.ab.ReportInvalid(c)
			}
		}
	}
}

// sub returns the cost of aligning symbols xc and yc against each other:
// 0 when they compare equal, the wildcard cost when they differ and either
// side is the wildcard, the canonical cost otherwise.
func (p problem) sub(xc, yc byte) int64 {
	switch {
	case p.ab.Same(xc, yc):
		return 0
	case p.ab.IsWildcard(xc) || p.ab.IsWildcard(yc):
		return p.costs.UnknownSubstitution
	default:
		return p.costs.Substitution
	}
}

// ins returns the cost of consuming symbol c alone: the insertion cost for
// an alphabet symbol, 0 for an invalid one (skipped without charge).
func (p problem) ins(c byte) int64 {
	if p.ab.IsBase(c) {
		return p.costs.Insertion
	}

	return 0
}

// borderCol allocates and seeds the (M+1)-element border column shared by
// the blocked strategies: col[i] is the cumulative insertion cost of the
// last i symbols of x, i.e. the stopping-condition value at the right edge
// of the table before any block has run.
func (p problem) borderCol() []int64 {
	col := make([]int64, p.m+1)
	for i := 1; i <= p.m; i++ {
		col[i] = col[i-1] + p.ins(p.x[p.m-i])
	}

	return col
}

// sweepBlock runs the bottom-up update over one block of `width` Y-columns
// starting after `lo` already-consumed columns, reading block-entry values
// from col and writing block-exit values back into it. tab must have at
// least width+1 elements; its contents are overwritten.
//
// Index convention (shared with the iterative strategy): tab[j] holds the
// distance between the last i symbols of x and the last lo+j symbols of y,
// for the row i currently being swept. The in-place update is safe because
// of one invariant: before tab[j] is overwritten, its prior value has been
// captured in prev for column j+1's diagonal term.
func (p problem) sweepBlock(col, tab []int64, lo, width int) {
	// Seed the bottom boundary row: pure insertion costs, continued from
	// the previous block through col[0].
	tab[0] = col[0]
	for j := 1; j <= width; j++ {
		tab[j] = tab[j-1] + p.ins(p.y[p.n-lo-j])
	}
	col[0] = tab[width]

	for i := 1; i <= p.m; i++ {
		xc := p.x[p.m-i]
		xBase := p.ab.IsBase(xc)

		prev := tab[0]
		tab[0] = col[i]
		for j := 1; j <= width; j++ {
			yc := p.y[p.n-lo-j]
			switch {
			case !p.ab.IsBase(yc):
				// Y-skip: copy the left neighbor, no charge.
				prev = tab[j]
				tab[j] = tab[j-1]
			case !xBase:
				// X-skip: the whole row carries over unchanged.
				prev = tab[j]
			default:
				best := tab[j]
				if tab[j-1] < best {
					best = tab[j-1]
				}
				best += p.costs.Insertion
				if d := p.sub(xc, yc) + prev; d < best {
					best = d
				}
				prev = tab[j]
				tab[j] = best
			}
		}
		col[i] = tab[width]
	}
}

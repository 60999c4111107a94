package nw

// iterative evaluates the distance bottom-up with O(N) auxiliary memory.
//
// tab[j] holds the distance between the last i symbols of x and the last j
// symbols of y, for the row i of the outer sweep; the sweep advances i from
// 0 to M, rewriting tab in place. The classic in-place hazard — needing the
// old tab[j] as the diagonal predecessor of tab[j+1] after tab[j] has been
// rewritten — is resolved by one stale scalar: before tab[j] is
// overwritten, its prior value is captured in prev for column j+1's
// diagonal term. After the final row, tab[N] is φ(0,0).
func (p problem) iterative() int64 {
	tab := make([]int64, p.n+1)
	for j := 1; j <= p.n; j++ {
		tab[j] = tab[j-1] + p.ins(p.y[p.n-j])
	}

	for i := 1; i <= p.m; i++ {
		xc := p.x[p.m-i]
		xBase := p.ab.IsBase(xc)

		prev := tab[0]
		tab[0] += p.ins(xc)
		for j := 1; j <= p.n; j++ {
			yc := p.y[p.n-j]
			switch {
			case !p.ab.IsBase(yc):
				// Y-skip: copy the left neighbor, no charge.
				prev = tab[j]
				tab[j] = tab[j-1]
			case !xBase:
				// X-skip: the row carries over unchanged.
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
	}

	return tab[p.n]
}

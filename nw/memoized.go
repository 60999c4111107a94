package nw

// notComputed marks memo cells that have not been evaluated yet. It is an
// impossible distance (distances are non-negative).
const notComputed int64 = -1

// memoized evaluates φ(0,0) top-down with full memoization.
//
// The memo table covers all (M+1)×(N+1) cells, stored as one flat slice,
// but only the cells reachable from (0,0) are ever filled — each exactly
// once. The on-demand descent runs on an explicit work stack instead of the
// call stack: a cell whose dependencies are ready is resolved and popped, a
// cell with missing dependencies pushes them and stays. Every pushed cell
// strictly increases i+j, so the stack never grows beyond O(M+N) frames.
func (p problem) memoized() int64 {
	w := p.n + 1
	memo := make([]int64, (p.m+1)*w)
	for i := range memo {
		memo[i] = notComputed
	}

	type cell struct{ i, j int }
	stack := make([]cell, 0, 64)
	stack = append(stack, cell{0, 0})

	for len(stack) > 0 {
		c := stack[len(stack)-1]
		at := c.i*w + c.j
		if memo[at] != notComputed {
			// Resolved through another path since it was pushed.
			stack = stack[:len(stack)-1]
			continue
		}

		var res int64
		switch {
		case c.i == p.m && c.j == p.n:
			res = 0
		case c.i == p.m:
			// End of x: consume the rest of y alone.
			d := memo[at+1]
			if d == notComputed {
				stack = append(stack, cell{c.i, c.j + 1})
				continue
			}
			res = p.ins(p.y[c.j]) + d
		case c.j == p.n:
			// End of y: consume the rest of x alone.
			d := memo[at+w]
			if d == notComputed {
				stack = append(stack, cell{c.i + 1, c.j})
				continue
			}
			res = p.ins(p.x[c.i]) + d
		case !p.ab.IsBase(p.x[c.i]):
			// Invalid symbol in x: skip at zero cost.
			d := memo[at+w]
			if d == notComputed {
				stack = append(stack, cell{c.i + 1, c.j})
				continue
			}
			res = d
		case !p.ab.IsBase(p.y[c.j]):
			// Invalid symbol in y: skip at zero cost.
			d := memo[at+1]
			if d == notComputed {
				stack = append(stack, cell{c.i, c.j + 1})
				continue
			}
			res = d
		default:
			diag, down, right := memo[at+w+1], memo[at+w], memo[at+1]
			if diag == notComputed || down == notComputed || right == notComputed {
				if diag == notComputed {
					stack = append(stack, cell{c.i + 1, c.j + 1})
				}
				if down == notComputed {
					stack = append(stack, cell{c.i + 1, c.j})
				}
				if right == notComputed {
					stack = append(stack, cell{c.i, c.j + 1})
				}
				continue
			}
			res = p.sub(p.x[c.i], p.y[c.j]) + diag
			if v := p.costs.Insertion + down; v < res {
				res = v
			}
			if v := p.costs.Insertion + right; v < res {
				res = v
			}
		}

		memo[at] = res
		stack = stack[:len(stack)-1]
	}

	return memo[0]
}
